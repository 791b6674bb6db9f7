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

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type verifierMock struct {
	mock.Mock
}

func (m *verifierMock) VerifyOperatorToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type OperatorAuthTestSuite struct {
	suite.Suite
	verifier *verifierMock
}

func TestOperatorAuthTestSuite(t *testing.T) {
	suite.Run(t, new(OperatorAuthTestSuite))
}

func (suite *OperatorAuthTestSuite) SetupTest() {
	suite.verifier = &verifierMock{}
}

func (suite *OperatorAuthTestSuite) TestValidToken() {
	suite.verifier.On("VerifyOperatorToken", "good-token").Return("admin", nil)

	var seenOperator string
	pattern, handler := WithOperatorAuth("GET /forms", func(w http.ResponseWriter, r *http.Request) {
		seenOperator = GetOperator(r.Context())
		w.WriteHeader(http.StatusOK)
	}, suite.verifier)

	req := httptest.NewRequest("GET", "/forms", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler(w, req)

	suite.Equal("GET /forms", pattern)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("admin", seenOperator)
	suite.verifier.AssertExpectations(suite.T())
}

func (suite *OperatorAuthTestSuite) TestMissingToken() {
	called := false
	_, handler := WithOperatorAuth("GET /forms", func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, suite.verifier)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/forms", nil))

	suite.False(called)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Bearer", w.Header().Get("WWW-Authenticate"))
	suite.verifier.AssertNotCalled(suite.T(), "VerifyOperatorToken", mock.Anything)
}

func (suite *OperatorAuthTestSuite) TestInvalidToken() {
	suite.verifier.On("VerifyOperatorToken", "bad-token").Return("", errors.New("token is expired"))

	called := false
	_, handler := WithOperatorAuth("GET /forms", func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, suite.verifier)

	req := httptest.NewRequest("GET", "/forms", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	handler(w, req)

	suite.False(called)
	suite.Equal(http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "unauthorized")
}

func (suite *OperatorAuthTestSuite) TestGetOperatorWithoutAuth() {
	req := httptest.NewRequest("GET", "/", nil)
	suite.Empty(GetOperator(req.Context()))
}

func (suite *OperatorAuthTestSuite) TestWithOperatorAuthAndCORS() {
	suite.verifier.On("VerifyOperatorToken", "good-token").Return("admin", nil)

	called := false
	pattern, handler := WithOperatorAuthAndCORS("DELETE /forms/{id}", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}, suite.verifier, CORSOptions{AllowedMethods: "DELETE"})
	suite.Equal("DELETE /forms/{id}", pattern)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("DELETE", "/forms/1", nil))
	suite.False(called)
	suite.Equal(http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest("DELETE", "/forms/1", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w = httptest.NewRecorder()
	handler(w, req)
	suite.True(called)
	suite.Equal(http.StatusNoContent, w.Code)
}
