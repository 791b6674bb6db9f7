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
	"net/http"

	"github.com/magamawi/TiD-Forms/internal/system/cache"
	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/database/provider"
	"github.com/magamawi/TiD-Forms/internal/system/middleware"
)

// Initialize initializes the form service and registers its operator routes. Field names listed in
// reservedFields are rejected in form schemas.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface,
	verifier middleware.OperatorTokenVerifier, reservedFields []string, cacheConfig config.CacheConfig) (
	FormServiceInterface, error) {
	formService, err := NewFormService(dbProvider, reservedFields, cacheConfig)
	if err != nil {
		return nil, err
	}
	formHandler := newFormHandler(formService)
	registerRoutes(mux, formHandler, verifier)
	return formService, nil
}

// NewFormService creates the form service backed by the forms database.
func NewFormService(dbProvider provider.DBProviderInterface, reservedFields []string,
	cacheConfig config.CacheConfig) (FormServiceInterface, error) {
	return newFormService(newFormStore(dbProvider), reservedFields,
		cache.NewCache[*CompiledForm]("CompiledFormCache", cacheConfig))
}

// registerRoutes registers the routes for form management operations.
func registerRoutes(mux *http.ServeMux, formHandler *formHandler, verifier middleware.OperatorTokenVerifier) {
	noContent := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("GET /forms",
		formHandler.HandleFormListRequest, verifier, opts1))
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("POST /forms",
		formHandler.HandleFormPostRequest, verifier, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms", noContent, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("GET /forms/{id}",
		formHandler.HandleFormGetRequest, verifier, opts2))
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("PUT /forms/{id}",
		formHandler.HandleFormPutRequest, verifier, opts2))
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("DELETE /forms/{id}",
		formHandler.HandleFormDeleteRequest, verifier, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{id}", noContent, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "PUT",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("PUT /forms/{id}/status",
		formHandler.HandleFormStatusPutRequest, verifier, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{id}/status", noContent, opts3))

	opts4 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("POST /forms/{id}/duplicate",
		formHandler.HandleFormDuplicateRequest, verifier, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{id}/duplicate", noContent, opts4))

	opts5 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("GET /form-templates",
		formHandler.HandleTemplateListRequest, verifier, opts5))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /form-templates", noContent, opts5))
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("GET /form-themes",
		formHandler.HandleThemeListRequest, verifier, opts5))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /form-themes", noContent, opts5))
	mux.HandleFunc(middleware.WithOperatorAuthAndCORS("GET /form-field-types",
		formHandler.HandleFieldTypeListRequest, verifier, opts5))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /form-field-types", noContent, opts5))
}
