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

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/magamawi/TiD-Forms/internal/system/constants"
	"github.com/magamawi/TiD-Forms/internal/system/healthcheck/model"
	"github.com/magamawi/TiD-Forms/tests/mocks/healthcheck/servicemock"
)

type HealthCheckHandlerTestSuite struct {
	suite.Suite
	handler     *HealthCheckHandler
	mockService *servicemock.HealthCheckServiceInterfaceMock
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (suite *HealthCheckHandlerTestSuite) SetupTest() {
	suite.mockService = servicemock.NewHealthCheckServiceInterfaceMock(suite.T())
	suite.handler = NewHealthCheckHandler(suite.mockService)
}

func (suite *HealthCheckHandlerTestSuite) TestHandleLivenessRequest() {
	req := httptest.NewRequest("GET", "/health/liveness", nil)
	rec := httptest.NewRecorder()

	suite.handler.HandleLivenessRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *HealthCheckHandlerTestSuite) TestHandleReadinessRequest_AllUp() {
	req := httptest.NewRequest("GET", "/health/readiness", nil)
	rec := httptest.NewRecorder()

	serverStatus := model.ServerStatus{
		Status: model.StatusUp,
		ServiceStatus: []model.ServiceStatus{
			{ServiceName: "FormsDB", Status: model.StatusUp},
			{ServiceName: "SubmissionCounterStore", Status: model.StatusUp},
		},
	}
	suite.mockService.On("CheckReadiness", mock.Anything).Return(serverStatus)

	suite.handler.HandleReadinessRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), constants.ContentTypeJSON, rec.Header().Get(constants.ContentTypeHeaderName))

	var response model.ServerStatus
	err := json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), serverStatus, response)
}

func (suite *HealthCheckHandlerTestSuite) TestHandleReadinessRequest_Down() {
	req := httptest.NewRequest("GET", "/health/readiness", nil)
	rec := httptest.NewRecorder()

	suite.mockService.On("CheckReadiness", mock.Anything).Return(model.ServerStatus{
		Status: model.StatusDown,
		ServiceStatus: []model.ServiceStatus{
			{ServiceName: "FormsDB", Status: model.StatusDown},
		},
	})

	suite.handler.HandleReadinessRequest(rec, req)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, rec.Code)
	assert.Equal(suite.T(), constants.ContentTypeJSON, rec.Header().Get(constants.ContentTypeHeaderName))

	var response model.ServerStatus
	err := json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.StatusDown, response.Status)
}
