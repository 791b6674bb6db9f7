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

package serviceerror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetail(t *testing.T) {
	base := ServiceError{
		Code:             "TST-1001",
		Type:             ClientErrorType,
		Error:            "Invalid request",
		ErrorDescription: "The request is invalid",
	}

	withDetail := WithDetail(base, "name must not be empty")
	assert.Equal(t, "The request is invalid: name must not be empty", withDetail.ErrorDescription)
	assert.Equal(t, base.Code, withDetail.Code)
	assert.Equal(t, base.Type, withDetail.Type)

	// The base value must stay untouched.
	assert.Equal(t, "The request is invalid", base.ErrorDescription)

	noDetail := WithDetail(base, "")
	assert.Equal(t, base.ErrorDescription, noDetail.ErrorDescription)
}
