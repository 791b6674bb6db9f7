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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	serverconst "github.com/magamawi/TiD-Forms/internal/system/constants"
	"github.com/magamawi/TiD-Forms/internal/system/error/apierror"
	"github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"
	"github.com/magamawi/TiD-Forms/internal/system/log"
	"github.com/magamawi/TiD-Forms/internal/system/metrics"
	sysutils "github.com/magamawi/TiD-Forms/internal/system/utils"
)

const loggerComponentNameHandler = "EntryHandler"

// entryHandler is the handler for entry management operations.
type entryHandler struct {
	entryService   EntryServiceInterface
	exportRecorder metrics.ExportRecorderInterface
}

// newEntryHandler creates a new instance of entryHandler. exportRecorder may be nil.
func newEntryHandler(entryService EntryServiceInterface, exportRecorder metrics.ExportRecorderInterface) *entryHandler {
	return &entryHandler{
		entryService:   entryService,
		exportRecorder: exportRecorder,
	}
}

// HandleEntryListRequest handles the list entries request of a form.
func (eh *entryHandler) HandleEntryListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	query := r.URL.Query()
	limit, offset, err := sysutils.ParsePaginationParams(query)
	if err != nil {
		if errors.Is(err, sysutils.ErrInvalidOffset) {
			writeServiceErrorResponse(w, &ErrorInvalidOffset, logger)
			return
		}
		writeServiceErrorResponse(w, &ErrorInvalidLimit, logger)
		return
	}

	filter, svcErr := parseEntryFilter(query)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	entryList, svcErr := eh.entryService.GetEntryList(r.Context(), r.PathValue("id"), filter, limit, offset)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, entryList)
}

// HandleEntryExportRequest handles the CSV export request of a form.
func (eh *entryHandler) HandleEntryExportRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	formID := r.PathValue("id")
	export, svcErr := eh.entryService.PrepareExport(r.Context(), formID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeCSV)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if err := export.WriteCSV(w); err != nil {
		logger.Error("Failed to stream export", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return
	}
	if eh.exportRecorder != nil {
		eh.exportRecorder.AddExportedEntries(len(export.Entries))
	}
}

// HandleEntryStatisticsRequest handles the entry statistics request of a form.
func (eh *entryHandler) HandleEntryStatisticsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	stats, svcErr := eh.entryService.GetStatistics(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, stats)
}

// HandleBulkActionRequest handles the bulk action request on the entries of a form.
func (eh *entryHandler) HandleBulkActionRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	bulkRequest, err := sysutils.DecodeJSONBody[BulkActionRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, serviceerror.WithDetail(ErrorInvalidRequestFormat, err.Error()), logger)
		return
	}

	result, svcErr := eh.entryService.BulkAction(r.Context(), r.PathValue("id"), bulkRequest.Action,
		bulkRequest.IDs)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, result)
}

// HandleEntryGetRequest handles the get entry request.
func (eh *entryHandler) HandleEntryGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	entry, svcErr := eh.entryService.GetEntry(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, entry)
}

// HandleEntryStatusPutRequest handles the entry status update request.
func (eh *entryHandler) HandleEntryStatusPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	statusRequest, err := sysutils.DecodeJSONBody[entryStatusRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, serviceerror.WithDetail(ErrorInvalidRequestFormat, err.Error()), logger)
		return
	}

	entry, svcErr := eh.entryService.UpdateEntryStatus(r.Context(), r.PathValue("id"),
		EntryStatus(statusRequest.Status))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, entry)
}

// HandleEntryDeleteRequest handles the delete entry request.
func (eh *entryHandler) HandleEntryDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	if svcErr := eh.entryService.DeleteEntry(r.Context(), r.PathValue("id")); svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseEntryFilter reads the status, search, from and to filters of an entry listing.
func parseEntryFilter(query url.Values) (EntryFilter, *serviceerror.ServiceError) {
	filter := EntryFilter{
		Status: EntryStatus(query.Get("status")),
		Search: query.Get("search"),
	}

	if from := query.Get("from"); from != "" {
		day, err := time.Parse(filterDateLayout, from)
		if err != nil {
			return EntryFilter{}, &ErrorInvalidDateFilter
		}
		filter.From = day
	}
	if to := query.Get("to"); to != "" {
		day, err := time.Parse(filterDateLayout, to)
		if err != nil {
			return EntryFilter{}, &ErrorInvalidDateFilter
		}
		filter.To = day
	}

	return filter, nil
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
	case ErrorEntryNotFound.Code, ErrorFormNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
