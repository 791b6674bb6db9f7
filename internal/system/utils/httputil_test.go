/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HTTPUtilTestSuite struct {
	suite.Suite
}

func TestHTTPUtilSuite(t *testing.T) {
	suite.Run(t, new(HTTPUtilTestSuite))
}

func (suite *HTTPUtilTestSuite) TestWriteJSONError() {
	testCases := []struct {
		name        string
		code        string
		desc        string
		statusCode  int
		respHeaders []map[string]string
	}{
		{
			name:       "BasicError",
			code:       "invalid_request",
			desc:       "The request is missing a required parameter",
			statusCode: http.StatusBadRequest,
			respHeaders: []map[string]string{
				{"X-Custom-Header": "custom-value"},
			},
		},
		{
			name:       "UnauthorizedError",
			code:       "unauthorized",
			desc:       "Authentication is required to access this resource",
			statusCode: http.StatusUnauthorized,
			respHeaders: []map[string]string{
				{"WWW-Authenticate": "Bearer"},
			},
		},
		{
			name:        "NoHeaders",
			code:        "server_error",
			desc:        "Internal server error occurred",
			statusCode:  http.StatusInternalServerError,
			respHeaders: []map[string]string{},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteJSONError(w, tc.code, tc.desc, tc.statusCode, tc.respHeaders)

			assert.Equal(t, tc.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			for _, headerMap := range tc.respHeaders {
				for key, value := range headerMap {
					assert.Equal(t, value, w.Header().Get(key))
				}
			}

			var response map[string]string
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tc.code, response["error"])
			assert.Equal(t, tc.desc, response["error_description"])
		})
	}
}

func (suite *HTTPUtilTestSuite) TestWriteJSONResponse() {
	w := httptest.NewRecorder()
	WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{"success": true})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Equal(suite.T(), "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(suite.T(), `{"success":true}`, w.Body.String())

	empty := httptest.NewRecorder()
	WriteJSONResponse(empty, http.StatusNoContent, nil)
	assert.Equal(suite.T(), http.StatusNoContent, empty.Code)
	assert.Empty(suite.T(), empty.Body.String())
}

type testStruct struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBody() {
	testCases := []struct {
		name        string
		jsonBody    string
		expected    testStruct
		expectError bool
	}{
		{
			name:     "ValidJSON",
			jsonBody: `{"name":"test","value":123}`,
			expected: testStruct{Name: "test", Value: 123},
		},
		{
			name:     "EmptyJSON",
			jsonBody: `{}`,
			expected: testStruct{},
		},
		{
			name:        "InvalidJSON",
			jsonBody:    `{"name":"test","value":}`,
			expectError: true,
		},
		{
			name:        "TooLarge",
			jsonBody:    `{"name":"` + strings.Repeat("a", maxRequestBodySize) + `"}`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.jsonBody))
			req.Header.Set("Content-Type", "application/json")

			result, err := DecodeJSONBody[testStruct](req)

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tc.expected, *result)
			}
		})
	}
}

func (suite *HTTPUtilTestSuite) TestSanitizeString() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"NormalString", "Normal string", "Normal string"},
		{"EntitiesKept", "Q&amp;A", "Q&amp;A"},
		{
			"StringWithHTML",
			"String with <script>alert('XSS')</script> HTML",
			"String with <script>alert('XSS')</script> HTML",
		},
		{"StringWithControlChars", "String with control \x00 chars", "String with control  chars"},
		{"StringWithWhitespace", "  Whitespace  ", "Whitespace"},
		{"EmptyString", "", ""},
		{"OnlyWhitespace", "   \t\n  ", ""},
		{"TabAndNewlinesPreserved", "Line 1\nLine 2\tTabbed", "Line 1\nLine 2\tTabbed"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeString(tc.input))
		})
	}
}

func (suite *HTTPUtilTestSuite) TestGetClientIP() {
	testCases := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trustProxy bool
		expected   string
	}{
		{"RemoteAddrWithPort", "192.168.1.10:5555", "", false, "192.168.1.10"},
		{"RemoteAddrWithoutPort", "192.168.1.10", "", false, "192.168.1.10"},
		{"IPv6RemoteAddr", "[2001:db8::1]:443", "", false, "2001:db8::1"},
		{"ForwardedIgnoredWhenUntrusted", "10.0.0.1:80", "203.0.113.7", false, "10.0.0.1"},
		{"ForwardedFirstHop", "10.0.0.1:80", "203.0.113.7, 10.0.0.2", true, "203.0.113.7"},
		{"InvalidForwardedFallsBack", "10.0.0.1:80", "not-an-ip", true, "10.0.0.1"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			assert.Equal(t, tc.expected, GetClientIP(req, tc.trustProxy))
		})
	}
}

func (suite *HTTPUtilTestSuite) TestExtractBearerToken() {
	testCases := []struct {
		name        string
		header      string
		expected    string
		expectError bool
	}{
		{"ValidToken", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"LowerCaseScheme", "bearer abc", "abc", false},
		{"MissingHeader", "", "", true},
		{"BasicScheme", "Basic dXNlcjpwYXNz", "", true},
		{"EmptyToken", "Bearer    ", "", true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			token, err := ExtractBearerToken(req)
			if tc.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, token)
			}
		})
	}
}
