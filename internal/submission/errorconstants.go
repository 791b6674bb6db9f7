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

package submission

import "github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"

const (
	rejectedMessage    = "Your submission could not be processed. Please try again later."
	unavailableMessage = "This form is currently unavailable."
	saveFailedMessage  = "Failed to save form submission. Please try again."
)

// Client errors for the public submission endpoints.
var (
	// ErrorSubmissionRejected is the error returned for every anti-automation rejection. The reason is
	// never disclosed to the caller.
	ErrorSubmissionRejected = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SUB-1001",
		Error:            "Submission rejected",
		ErrorDescription: rejectedMessage,
	}
	// ErrorFormUnavailable is the error returned when the form does not exist or is inactive.
	ErrorFormUnavailable = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SUB-1002",
		Error:            "Form unavailable",
		ErrorDescription: unavailableMessage,
	}
	// ErrorInvalidRequestFormat is the error returned when the submission body cannot be read.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SUB-1003",
		Error:            "Invalid request format",
		ErrorDescription: "The submission body could not be read.",
	}
)

// Server errors for the public submission endpoints.
var (
	// ErrorInternalServerError is the error returned when an unexpected error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SUB-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request.",
	}
	// ErrorSubmissionNotSaved is the error returned when a valid submission could not be stored.
	ErrorSubmissionNotSaved = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SUB-5001",
		Error:            "Submission not saved",
		ErrorDescription: saveFailedMessage,
	}
)
