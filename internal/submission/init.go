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

import (
	"net/http"

	"github.com/magamawi/TiD-Forms/internal/entry"
	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/events"
	"github.com/magamawi/TiD-Forms/internal/system/jwt"
	"github.com/magamawi/TiD-Forms/internal/system/metrics"
	"github.com/magamawi/TiD-Forms/internal/system/middleware"
	"github.com/magamawi/TiD-Forms/internal/system/ratelimit"
)

// Initialize initializes the submission service and registers the public routes. recorder may be nil.
func Initialize(mux *http.ServeMux, cfg config.Config, formService form.FormServiceInterface,
	entryService entry.EntryServiceInterface, tokenService jwt.TokenServiceInterface,
	limiter ratelimit.LimiterInterface, publisher events.PublisherInterface,
	recorder metrics.SubmissionRecorderInterface) SubmissionServiceInterface {
	submissionService := newSubmissionService(formService, entryService, tokenService, limiter, publisher,
		recorder, cfg.Submission.Token.Enabled)
	submissionHandler := newSubmissionHandler(submissionService, cfg.Server.TrustProxyHeaders,
		cfg.Submission.HoneypotField, cfg.Submission.TokenField)
	registerRoutes(mux, submissionHandler)
	return submissionService
}

// registerRoutes registers the public routes used by the embed surface.
func registerRoutes(mux *http.ServeMux, submissionHandler *submissionHandler) {
	noContent := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	opts1 := middleware.CORSOptions{
		AllowedMethods: "GET",
		AllowedHeaders: "Content-Type",
	}
	mux.HandleFunc(middleware.WithCORS("GET /public/forms/{id}",
		submissionHandler.HandlePublicFormGetRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /public/forms/{id}", noContent, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods: "POST",
		AllowedHeaders: "Content-Type",
	}
	mux.HandleFunc(middleware.WithCORS("POST /public/forms/{id}/submissions",
		submissionHandler.HandleSubmissionPostRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /public/forms/{id}/submissions", noContent, opts2))
}
