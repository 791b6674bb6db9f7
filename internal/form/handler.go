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
	"encoding/json"
	"errors"
	"net/http"

	serverconst "github.com/magamawi/TiD-Forms/internal/system/constants"
	"github.com/magamawi/TiD-Forms/internal/system/error/apierror"
	"github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"
	"github.com/magamawi/TiD-Forms/internal/system/log"
	sysutils "github.com/magamawi/TiD-Forms/internal/system/utils"
)

const loggerComponentNameHandler = "FormHandler"

// formHandler is the handler for form management operations.
type formHandler struct {
	formService FormServiceInterface
}

// newFormHandler creates a new instance of formHandler.
func newFormHandler(formService FormServiceInterface) *formHandler {
	return &formHandler{
		formService: formService,
	}
}

// HandleFormListRequest handles the list forms request.
func (fh *formHandler) HandleFormListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	limit, offset, err := sysutils.ParsePaginationParams(r.URL.Query())
	if err != nil {
		if errors.Is(err, sysutils.ErrInvalidOffset) {
			writeServiceErrorResponse(w, &ErrorInvalidOffset, logger)
			return
		}
		writeServiceErrorResponse(w, &ErrorInvalidLimit, logger)
		return
	}
	status := FormStatus(r.URL.Query().Get("status"))

	formList, svcErr := fh.formService.GetFormList(r.Context(), limit, offset, status)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, formList)
}

// HandleFormPostRequest handles the create form request.
func (fh *formHandler) HandleFormPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	createRequest, err := sysutils.DecodeJSONBody[FormRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, serviceerror.WithDetail(ErrorInvalidRequestFormat, err.Error()), logger)
		return
	}

	form, svcErr := fh.formService.CreateForm(r.Context(), sanitizeFormRequest(*createRequest))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	logger.Debug("Form created", log.String(log.LoggerKeyFormID, form.ID))
	sysutils.WriteJSONResponse(w, http.StatusCreated, form)
}

// HandleFormGetRequest handles the get form request.
func (fh *formHandler) HandleFormGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	form, svcErr := fh.formService.GetForm(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, form)
}

// HandleFormPutRequest handles the update form request.
func (fh *formHandler) HandleFormPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	updateRequest, err := sysutils.DecodeJSONBody[FormRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, serviceerror.WithDetail(ErrorInvalidRequestFormat, err.Error()), logger)
		return
	}

	form, svcErr := fh.formService.UpdateForm(r.Context(), r.PathValue("id"), sanitizeFormRequest(*updateRequest))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, form)
}

// HandleFormStatusPutRequest handles the form status update request.
func (fh *formHandler) HandleFormStatusPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	statusRequest, err := sysutils.DecodeJSONBody[formStatusRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, serviceerror.WithDetail(ErrorInvalidRequestFormat, err.Error()), logger)
		return
	}

	form, svcErr := fh.formService.UpdateFormStatus(r.Context(), r.PathValue("id"),
		FormStatus(statusRequest.Status))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, form)
}

// HandleFormDuplicateRequest handles the duplicate form request.
func (fh *formHandler) HandleFormDuplicateRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	form, svcErr := fh.formService.DuplicateForm(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusCreated, form)
}

// HandleFormDeleteRequest handles the delete form request.
func (fh *formHandler) HandleFormDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	if svcErr := fh.formService.DeleteForm(r.Context(), r.PathValue("id")); svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleTemplateListRequest handles the list form templates request.
func (fh *formHandler) HandleTemplateListRequest(w http.ResponseWriter, r *http.Request) {
	sysutils.WriteJSONResponse(w, http.StatusOK, fh.formService.GetTemplates())
}

// HandleThemeListRequest handles the list form themes request.
func (fh *formHandler) HandleThemeListRequest(w http.ResponseWriter, r *http.Request) {
	sysutils.WriteJSONResponse(w, http.StatusOK, fh.formService.GetThemes())
}

// HandleFieldTypeListRequest handles the list field types request.
func (fh *formHandler) HandleFieldTypeListRequest(w http.ResponseWriter, r *http.Request) {
	sysutils.WriteJSONResponse(w, http.StatusOK, fh.formService.GetFieldTypes())
}

// sanitizeFormRequest sanitizes the free text attributes of a form request.
func sanitizeFormRequest(request FormRequest) FormRequest {
	request.Name = sysutils.SanitizeString(request.Name)
	request.Description = sysutils.SanitizeString(request.Description)
	request.Template = sysutils.SanitizeString(request.Template)
	return request
}

// writeServiceErrorResponse writes the appropriate HTTP error response based on the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	} else {
		statusCode = http.StatusInternalServerError
	}
	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case ErrorFormNotFound.Code, ErrorTemplateNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
