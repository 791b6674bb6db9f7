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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StringUtilTestSuite struct {
	suite.Suite
}

func TestStringUtilSuite(t *testing.T) {
	suite.Run(t, new(StringUtilTestSuite))
}

type testStringer struct{}

func (s testStringer) String() string {
	return "test-stringer"
}

func (suite *StringUtilTestSuite) TestConvertInterfaceValueToString() {
	testCases := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"NilValue", nil, ""},
		{"StringValue", "hello", "hello"},
		{"ByteSlice", []byte("hello"), "hello"},
		{"IntValue", 42, "42"},
		{"Int64Value", int64(9223372036854775807), "9223372036854775807"},
		{"BoolValue", true, "true"},
		{"StringerInterface", testStringer{}, "test-stringer"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ConvertInterfaceValueToString(tc.input))
		})
	}
}

func (suite *StringUtilTestSuite) TestSlugify() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple", "Contact Us", "contact-us"},
		{"Punctuation", "  Newsletter -- Signup! ", "newsletter-signup"},
		{"Digits", "Feedback 2025", "feedback-2025"},
		{"Unicode", "Café Form", "café-form"},
		{"OnlySymbols", "!!!", ""},
		{"Empty", "", ""},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}
