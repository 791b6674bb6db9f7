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

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/magamawi/TiD-Forms/internal/system/database/model"
)

const testBaseQuery = "SELECT ID, DATA FROM FORM_ENTRIES WHERE FORM_ID = %s"

type QueryBuilderTestSuite struct {
	suite.Suite
}

func TestQueryBuilderSuite(t *testing.T) {
	suite.Run(t, new(QueryBuilderTestSuite))
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQuery() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	conditions := []Condition{
		{Column: "STATUS", Operator: OperatorEqual, Value: "unread"},
		{Column: "DATA", Operator: OperatorContains, Value: "%john%"},
		{Column: "SUBMITTED_AT", Operator: OperatorGreaterOrEqual, Value: from},
	}

	query, args, err := BuildFilterQuery("ENQ-TEST-01", testBaseQuery, []interface{}{"f-1"}, conditions,
		"ORDER BY SUBMITTED_AT DESC LIMIT %s OFFSET %s", []interface{}{10, 20})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ENQ-TEST-01", query.ID)
	assert.Equal(suite.T(), []interface{}{"f-1", "unread", "%john%", from, 10, 20}, args)

	assert.Equal(suite.T(),
		"SELECT ID, DATA FROM FORM_ENTRIES WHERE FORM_ID = $1 AND STATUS = $2 AND DATA ILIKE $3 ESCAPE '\\'"+
			" AND SUBMITTED_AT >= $4 ORDER BY SUBMITTED_AT DESC LIMIT $5 OFFSET $6",
		query.GetQuery(model.DBTypePostgres))
	assert.Equal(suite.T(),
		"SELECT ID, DATA FROM FORM_ENTRIES WHERE FORM_ID = ? AND STATUS = ? AND DATA LIKE ? ESCAPE '\\'"+
			" AND SUBMITTED_AT >= ? ORDER BY SUBMITTED_AT DESC LIMIT ? OFFSET ?",
		query.GetQuery(model.DBTypeSQLite))
	assert.Equal(suite.T(), query.GetQuery(model.DBTypePostgres), query.GetQuery("unknown"))
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQueryWithoutConditions() {
	query, args, err := BuildFilterQuery("ENQ-TEST-02", testBaseQuery, []interface{}{"f-1"}, nil, "", nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []interface{}{"f-1"}, args)
	assert.Equal(suite.T(), "SELECT ID, DATA FROM FORM_ENTRIES WHERE FORM_ID = $1", query.PostgresQuery)
	assert.Equal(suite.T(), "SELECT ID, DATA FROM FORM_ENTRIES WHERE FORM_ID = ?", query.SQLiteQuery)
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQueryErrors() {
	testCases := []struct {
		name       string
		baseArgs   []interface{}
		conditions []Condition
		tail       string
		tailArgs   []interface{}
	}{
		{name: "BaseArgumentMismatch", baseArgs: nil},
		{
			name:     "TailArgumentMismatch",
			baseArgs: []interface{}{"f-1"},
			tail:     "LIMIT %s",
		},
		{
			name:       "InvalidColumn",
			baseArgs:   []interface{}{"f-1"},
			conditions: []Condition{{Column: "STATUS; DROP TABLE FORMS", Operator: OperatorEqual, Value: "x"}},
		},
		{
			name:       "EmptyColumn",
			baseArgs:   []interface{}{"f-1"},
			conditions: []Condition{{Column: "", Operator: OperatorEqual, Value: "x"}},
		},
		{
			name:       "UnsupportedOperator",
			baseArgs:   []interface{}{"f-1"},
			conditions: []Condition{{Column: "STATUS", Operator: "<>", Value: "x"}},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, args, err := BuildFilterQuery("ENQ-TEST-03", testBaseQuery, tc.baseArgs, tc.conditions,
				tc.tail, tc.tailArgs)
			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), args)
		})
	}
}

func (suite *QueryBuilderTestSuite) TestEscapeLikePattern() {
	assert.Equal(suite.T(), "%john%", EscapeLikePattern("john"))
	assert.Equal(suite.T(), `%100\%\_off\\%`, EscapeLikePattern(`100%_off\`))
}
