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
	"net/http"

	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/system/database/provider"
	"github.com/magamawi/TiD-Forms/internal/system/metrics"
	"github.com/magamawi/TiD-Forms/internal/system/middleware"
)

// Initialize initializes the entry service and registers its operator routes.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface, formService form.FormServiceInterface,
	verifier middleware.OperatorTokenVerifier, exportRecorder metrics.ExportRecorderInterface) EntryServiceInterface {
	entryService := NewEntryService(dbProvider, formService)
	entryHandler := newEntryHandler(entryService, exportRecorder)
	registerRoutes(mux, entryHandler, verifier)
	return entryService
}

// NewEntryService creates the entry service backed by the forms database.
func NewEntryService(dbProvider provider.DBProviderInterface,
	formService form.FormServiceInterface) EntryServiceInterface {
	return newEntryService(newEntryStore(dbProvider), formService)
}

// registerRoutes registers the routes for entry management operations.
func registerRoutes(mux *http.ServeMux, entryHandler *entryHandler, verifier middleware.OperatorTokenVerifier) {
	noContent := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("GET /forms/{id}/entries",
		entryHandler.HandleEntryListRequest, verifier, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{id}/entries", noContent, opts1))
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("GET /forms/{id}/entries/export",
		entryHandler.HandleEntryExportRequest, verifier, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{id}/entries/export", noContent, opts1))
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("GET /forms/{id}/entries/stats",
		entryHandler.HandleEntryStatisticsRequest, verifier, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{id}/entries/stats", noContent, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("POST /forms/{id}/entries/bulk",
		entryHandler.HandleBulkActionRequest, verifier, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{id}/entries/bulk", noContent, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("GET /entries/{id}",
		entryHandler.HandleEntryGetRequest, verifier, opts3))
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("DELETE /entries/{id}",
		entryHandler.HandleEntryDeleteRequest, verifier, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /entries/{id}", noContent, opts3))

	opts4 := middleware.CORSOptions{
		AllowedMethods:   "PUT",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("PUT /entries/{id}/status",
		entryHandler.HandleEntryStatusPutRequest, verifier, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /entries/{id}/status", noContent, opts4))
}
