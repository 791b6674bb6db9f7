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

// Package healthcheck wires the liveness and readiness endpoints of the server.
package healthcheck

import (
	"net/http"

	"github.com/magamawi/TiD-Forms/internal/system/database/provider"
	"github.com/magamawi/TiD-Forms/internal/system/healthcheck/handler"
	"github.com/magamawi/TiD-Forms/internal/system/healthcheck/service"
	"github.com/magamawi/TiD-Forms/internal/system/middleware"
)

// Initialize creates the health check service and registers its routes.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface,
	counterStore service.Pinger) service.HealthCheckServiceInterface {
	healthCheckService := service.NewHealthCheckService(dbProvider, counterStore)
	registerRoutes(mux, handler.NewHealthCheckHandler(healthCheckService))
	return healthCheckService
}

// registerRoutes registers the liveness and readiness routes.
func registerRoutes(mux *http.ServeMux, healthCheckHandler *handler.HealthCheckHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("OPTIONS /health/liveness",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("GET /health/liveness",
		healthCheckHandler.HandleLivenessRequest, opts))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /health/readiness",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("GET /health/readiness",
		healthCheckHandler.HandleReadinessRequest, opts))
}
