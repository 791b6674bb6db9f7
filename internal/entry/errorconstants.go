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

package entry

import (
	"errors"

	"github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"
)

// ErrEntryNotFound is returned by the store when the entry does not exist.
var ErrEntryNotFound = errors.New("entry not found")

// Client errors for entry management operations.
var (
	// ErrorEntryNotFound is the error returned when an entry is not found.
	ErrorEntryNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1001",
		Error:            "Entry not found",
		ErrorDescription: "The entry with the specified id does not exist",
	}
	// ErrorInvalidEntryID is the error returned when the entry id is missing.
	ErrorInvalidEntryID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1002",
		Error:            "Invalid entry id",
		ErrorDescription: "The entry id must not be empty",
	}
	// ErrorInvalidEntryStatus is the error returned when the entry status is not supported.
	ErrorInvalidEntryStatus = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1003",
		Error:            "Invalid entry status",
		ErrorDescription: "The entry status must be either unread or read",
	}
	// ErrorInvalidBulkAction is the error returned when the bulk action is not supported.
	ErrorInvalidBulkAction = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1004",
		Error:            "Invalid bulk action",
		ErrorDescription: "The bulk action must be one of delete, mark_read or mark_unread",
	}
	// ErrorEmptyBulkSelection is the error returned when a bulk action selects no entries.
	ErrorEmptyBulkSelection = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1005",
		Error:            "No entries selected",
		ErrorDescription: "At least one entry id must be provided",
	}
	// ErrorInvalidDateFilter is the error returned when a date filter cannot be parsed.
	ErrorInvalidDateFilter = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1006",
		Error:            "Invalid date filter",
		ErrorDescription: "Date filters must use the YYYY-MM-DD format and from must not be after to",
	}
	// ErrorInvalidLimit is the error returned when the limit parameter is invalid.
	ErrorInvalidLimit = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1007",
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The limit parameter must be a positive integer within the maximum page size",
	}
	// ErrorInvalidOffset is the error returned when the offset parameter is invalid.
	ErrorInvalidOffset = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1008",
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The offset parameter must be a non-negative integer",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1009",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorFormNotFound is the error returned when the form of the entries is not found.
	ErrorFormNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1010",
		Error:            "Form not found",
		ErrorDescription: "The form with the specified id does not exist",
	}
)

// Server errors for entry management operations.
var (
	// ErrorInternalServerError is the error returned when an unexpected error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ENT-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
