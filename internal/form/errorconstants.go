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

package form

import (
	"errors"

	"github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"
)

// ErrFormNotFound is returned when the form is not found in the system.
var ErrFormNotFound = errors.New("form not found")

// Client errors for form management operations.
var (
	// ErrorFormNotFound is the error returned when a form is not found.
	ErrorFormNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1001",
		Error:            "Form not found",
		ErrorDescription: "The requested form could not be found",
	}
	// ErrorInvalidFormID is the error returned when an invalid form ID is provided.
	ErrorInvalidFormID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1002",
		Error:            "Invalid form ID",
		ErrorDescription: "The provided form ID is invalid or empty",
	}
	// ErrorInvalidFormName is the error returned when the form name is missing.
	ErrorInvalidFormName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1003",
		Error:            "Invalid form name",
		ErrorDescription: "The form name must not be empty",
	}
	// ErrorInvalidFormSchema is the error returned when the field descriptors do not compile.
	ErrorInvalidFormSchema = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1004",
		Error:            "Invalid form schema",
		ErrorDescription: "The form fields are invalid",
	}
	// ErrorInvalidFormSettings is the error returned when a presentation setting is out of range.
	ErrorInvalidFormSettings = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1005",
		Error:            "Invalid form settings",
		ErrorDescription: "One or more form settings are invalid",
	}
	// ErrorInvalidFormStatus is the error returned when an unknown status is provided.
	ErrorInvalidFormStatus = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1006",
		Error:            "Invalid form status",
		ErrorDescription: "The form status must be either active or inactive",
	}
	// ErrorTemplateNotFound is the error returned when an unknown template is requested.
	ErrorTemplateNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1007",
		Error:            "Template not found",
		ErrorDescription: "The requested form template does not exist",
	}
	// ErrorReservedFieldName is the error returned when a field uses a name reserved by the submission surface.
	ErrorReservedFieldName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1008",
		Error:            "Reserved field name",
		ErrorDescription: "A field name is reserved for submission protection",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1009",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidLimit is the error returned when the limit query parameter is invalid.
	ErrorInvalidLimit = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1010",
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The limit parameter must be a positive integer no greater than 100",
	}
	// ErrorInvalidOffset is the error returned when the offset query parameter is invalid.
	ErrorInvalidOffset = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1011",
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The offset parameter must be a non-negative integer",
	}
)

// Server errors for form management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FRM-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
