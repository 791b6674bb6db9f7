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

// Package service provides health check-related business logic and operations.
package service

import (
	"context"

	"github.com/magamawi/TiD-Forms/internal/system/constants"
	dbmodel "github.com/magamawi/TiD-Forms/internal/system/database/model"
	"github.com/magamawi/TiD-Forms/internal/system/database/provider"
	"github.com/magamawi/TiD-Forms/internal/system/healthcheck/model"
	"github.com/magamawi/TiD-Forms/internal/system/log"
)

const (
	formsDBServiceName      = "FormsDB"
	counterStoreServiceName = "SubmissionCounterStore"
)

var queryFormsDBStatus = dbmodel.DBQuery{
	ID:    "HLC-00001",
	Query: "SELECT 1",
}

// Pinger is a dependency that can report whether it is able to serve requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider   provider.DBProviderInterface
	CounterStore Pinger
}

// NewHealthCheckService creates a new instance of HealthCheckService. The counter store may be nil
// when submissions are not rate limited.
func NewHealthCheckService(dbProvider provider.DBProviderInterface, counterStore Pinger) HealthCheckServiceInterface {
	return &HealthCheckService{
		DBProvider:   dbProvider,
		CounterStore: counterStore,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness(ctx context.Context) model.ServerStatus {
	statuses := []model.ServiceStatus{
		{
			ServiceName: formsDBServiceName,
			Status:      hcs.checkDatabaseStatus(ctx, constants.FormsDBName, queryFormsDBStatus),
		},
	}
	if hcs.CounterStore != nil {
		statuses = append(statuses, model.ServiceStatus{
			ServiceName: counterStoreServiceName,
			Status:      hcs.checkPingerStatus(ctx, counterStoreServiceName, hcs.CounterStore),
		})
	}

	status := model.StatusUp
	for _, serviceStatus := range statuses {
		if serviceStatus.Status == model.StatusDown {
			status = model.StatusDown
		}
	}
	return model.ServerStatus{
		Status:        status,
		ServiceStatus: statuses,
	}
}

// checkDatabaseStatus checks the status of the specified database with the specified query.
func (hcs *HealthCheckService) checkDatabaseStatus(ctx context.Context, dbName string,
	query dbmodel.DBQuery) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.DBProvider.GetDBClient(dbName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.StatusDown
	}

	_, err = dbClient.Query(ctx, query)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}

// checkPingerStatus pings a dependency and maps the outcome to a status.
func (hcs *HealthCheckService) checkPingerStatus(ctx context.Context, name string, pinger Pinger) model.Status {
	if err := pinger.Ping(ctx); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService")).
			Error("Dependency ping failed", log.String("dependency", name), log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
