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

package main

import (
	"errors"
	"net/http"

	"github.com/magamawi/TiD-Forms/internal/entry"
	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/submission"
	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/database/provider"
	"github.com/magamawi/TiD-Forms/internal/system/events"
	"github.com/magamawi/TiD-Forms/internal/system/healthcheck"
	"github.com/magamawi/TiD-Forms/internal/system/jwt"
	"github.com/magamawi/TiD-Forms/internal/system/log"
	"github.com/magamawi/TiD-Forms/internal/system/metrics"
	"github.com/magamawi/TiD-Forms/internal/system/ratelimit"
)

// serviceManager owns the long lived resources shared by the services.
type serviceManager struct {
	dbProvider   provider.DBProviderInterface
	counterStore ratelimit.CounterStoreInterface
	publisher    events.PublisherInterface
}

// registerServices creates the services and registers their routes with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, cfg *config.Config) (*serviceManager, error) {
	logger := log.GetLogger()

	jwtService, err := jwt.NewJWTService(cfg.Auth.JWT)
	if err != nil {
		return nil, err
	}
	tokenService := jwt.NewTokenService(jwtService, cfg.Auth.JWT)

	sm := &serviceManager{dbProvider: provider.GetDBProvider()}

	sm.counterStore, err = ratelimit.NewCounterStore(*cfg)
	if err != nil {
		return nil, errors.Join(err, sm.close())
	}
	sm.publisher, err = events.NewPublisher(cfg.Events)
	if err != nil {
		return nil, errors.Join(err, sm.close())
	}

	// The recorders stay nil interfaces when metrics are disabled.
	var submissionRecorder metrics.SubmissionRecorderInterface
	var exportRecorder metrics.ExportRecorderInterface
	if cfg.Metrics.Enabled {
		m := metrics.NewMetrics()
		metrics.Initialize(mux, m)
		submissionRecorder = m
		exportRecorder = m
		logger.Info("Metrics endpoint enabled")
	}

	reservedFields := []string{cfg.Submission.HoneypotField, cfg.Submission.TokenField}
	formService, err := form.Initialize(mux, sm.dbProvider, tokenService, reservedFields, cfg.Cache)
	if err != nil {
		return nil, errors.Join(err, sm.close())
	}
	entryService := entry.Initialize(mux, sm.dbProvider, formService, tokenService, exportRecorder)

	limiter := ratelimit.NewLimiter(sm.counterStore, cfg.Submission.RateLimit)
	_ = submission.Initialize(mux, *cfg, formService, entryService, tokenService, limiter, sm.publisher,
		submissionRecorder)

	_ = healthcheck.Initialize(mux, sm.dbProvider, sm.counterStore)

	return sm, nil
}

// close releases the publisher, the counter store and the database connections.
func (sm *serviceManager) close() error {
	var errs []error
	if sm.publisher != nil {
		errs = append(errs, sm.publisher.Close())
	}
	if sm.counterStore != nil {
		errs = append(errs, sm.counterStore.Close())
	}
	if sm.dbProvider != nil {
		errs = append(errs, sm.dbProvider.Close())
	}
	return errors.Join(errs...)
}
