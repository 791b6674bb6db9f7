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
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/form/model"
	"github.com/magamawi/TiD-Forms/tests/mocks/formmock"
)

type staticVerifier struct{}

func (staticVerifier) VerifyOperatorToken(token string) (string, error) {
	if token != "operator-token" {
		return "", errors.New("invalid token")
	}
	return "admin", nil
}

type exportCounter struct {
	exported int
}

func (c *exportCounter) AddExportedEntries(count int) {
	c.exported += count
}

type EntryHandlerTestSuite struct {
	suite.Suite
	store       *EntryStoreInterfaceMock
	formService *formmock.FormServiceInterfaceMock
	counter     *exportCounter
	mux         *http.ServeMux
}

func TestEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	suite.store = NewEntryStoreInterfaceMock(suite.T())
	suite.formService = formmock.NewFormServiceInterfaceMock(suite.T())
	service := newEntryService(suite.store, suite.formService).(*entryService)
	service.now = func() time.Time { return fixedNow }

	suite.counter = &exportCounter{}
	suite.mux = http.NewServeMux()
	registerRoutes(suite.mux, newEntryHandler(service, suite.counter), staticVerifier{})
}

func (suite *EntryHandlerTestSuite) serve(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer operator-token")

	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *EntryHandlerTestSuite) TestRequiresOperatorToken() {
	req := httptest.NewRequest(http.MethodGet, "/forms/form-1/entries/export", nil)
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	suite.Equal(http.StatusUnauthorized, rr.Code)
}

func (suite *EntryHandlerTestSuite) TestExport() {
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").Return(compiledForm("form-1", "Contact"), nil)
	suite.store.On("GetAllEntries", mock.Anything, "form-1").Return([]Entry{
		{Data: model.Data{"name": model.StringValue("Ada")}, SubmittedAt: fixedNow, Status: EntryStatusUnread},
		{Data: model.Data{"name": model.StringValue("Bob")}, SubmittedAt: fixedNow, Status: EntryStatusRead},
	}, nil)

	rr := suite.serve(http.MethodGet, "/forms/form-1/entries/export", "")

	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal("text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="contact_entries_2025-05-20.csv"`, rr.Header().Get("Content-Disposition"))
	suite.True(strings.HasPrefix(rr.Body.String(), "\xEF\xBB\xBFSubmission Date,Status,Name,Email,Topics"))
	suite.Contains(rr.Body.String(), "2025-05-20 15:04:05,Read,Bob,,,\n")
	suite.Equal(2, suite.counter.exported)
}

func (suite *EntryHandlerTestSuite) TestExportFormNotFound() {
	suite.formService.On("GetCompiledForm", mock.Anything, "missing").Return(nil, &form.ErrorFormNotFound)

	rr := suite.serve(http.MethodGet, "/forms/missing/entries/export", "")

	suite.Equal(http.StatusNotFound, rr.Code)
	suite.Contains(rr.Body.String(), ErrorFormNotFound.Code)
	suite.Equal(0, suite.counter.exported)
}

func (suite *EntryHandlerTestSuite) TestListEntriesInvalidDate() {
	rr := suite.serve(http.MethodGet, "/forms/form-1/entries?from=05/01/2025", "")
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Contains(rr.Body.String(), ErrorInvalidDateFilter.Code)
}

func (suite *EntryHandlerTestSuite) TestListEntries() {
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").Return(compiledForm("form-1", "Contact"), nil)
	filter := EntryFilter{Status: EntryStatusUnread, From: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)}
	suite.store.On("GetEntryListCount", mock.Anything, "form-1", filter).Return(1, nil)
	suite.store.On("GetEntryList", mock.Anything, "form-1", filter, 30, 0).
		Return([]Entry{{ID: "entry-1", FormID: "form-1", Status: EntryStatusUnread}}, nil)

	rr := suite.serve(http.MethodGet, "/forms/form-1/entries?status=unread&from=2025-05-01", "")

	suite.Equal(http.StatusOK, rr.Code)
	var response EntryListResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &response))
	suite.Equal(1, response.TotalResults)
	suite.Equal("entry-1", response.Entries[0].ID)
}

func (suite *EntryHandlerTestSuite) TestStatistics() {
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").Return(compiledForm("form-1", "Contact"), nil)
	suite.store.On("GetStatusCounts", mock.Anything, "form-1").Return(map[string]int{}, nil)
	suite.store.On("GetDailyCounts", mock.Anything, "form-1", mock.Anything).Return([]DailyCount{}, nil)
	suite.store.On("GetLatestSubmission", mock.Anything, "form-1").Return(nil, nil)

	rr := suite.serve(http.MethodGet, "/forms/form-1/entries/stats", "")

	suite.Equal(http.StatusOK, rr.Code)
	suite.JSONEq(`{"total":0,"byStatus":{"read":0,"unread":0},"daily":[]}`, rr.Body.String())
}

func (suite *EntryHandlerTestSuite) TestBulkAction() {
	suite.store.On("DeleteEntries", mock.Anything, "form-1", []string{"a", "b"}).Return(2, nil)

	rr := suite.serve(http.MethodPost, "/forms/form-1/entries/bulk", `{"action":"delete","ids":["a","b"]}`)

	suite.Equal(http.StatusOK, rr.Code)
	suite.JSONEq(`{"action":"delete","affected":2}`, rr.Body.String())

	rr = suite.serve(http.MethodPost, "/forms/form-1/entries/bulk", `{"action":"purge","ids":["a"]}`)
	suite.Equal(http.StatusBadRequest, rr.Code)

	rr = suite.serve(http.MethodPost, "/forms/form-1/entries/bulk", `not json`)
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Contains(rr.Body.String(), ErrorInvalidRequestFormat.Code)
}

func (suite *EntryHandlerTestSuite) TestEntryRoutes() {
	suite.store.On("GetEntry", mock.Anything, "missing").Return(nil, ErrEntryNotFound)
	rr := suite.serve(http.MethodGet, "/entries/missing", "")
	suite.Equal(http.StatusNotFound, rr.Code)

	suite.store.On("UpdateEntryStatus", mock.Anything, "entry-1", EntryStatusRead).Return(nil)
	suite.store.On("GetEntry", mock.Anything, "entry-1").
		Return(&Entry{ID: "entry-1", FormID: "form-1", Data: model.Data{}, Status: EntryStatusRead}, nil)
	rr = suite.serve(http.MethodPut, "/entries/entry-1/status", `{"status":"read"}`)
	suite.Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), `"status":"read"`)

	suite.store.On("DeleteEntry", mock.Anything, "entry-1").Return(nil)
	rr = suite.serve(http.MethodDelete, "/entries/entry-1", "")
	suite.Equal(http.StatusNoContent, rr.Code)
}

func TestParseEntryFilter(t *testing.T) {
	filter, svcErr := parseEntryFilter(url.Values{
		"status": {"read"},
		"search": {"ada"},
		"from":   {"2025-05-01"},
		"to":     {"2025-05-02"},
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, EntryStatusRead, filter.Status)
	assert.Equal(t, "ada", filter.Search)
	assert.Equal(t, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), filter.To)
	assert.Equal(t, "from=2025-05-01&search=ada&status=read&to=2025-05-02", filter.encode())

	_, svcErr = parseEntryFilter(url.Values{"to": {"tomorrow"}})
	assert.Equal(t, &ErrorInvalidDateFilter, svcErr)
}
