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
	"fmt"
	"strings"

	"github.com/magamawi/TiD-Forms/internal/system/database/model"
)

const (
	// entryColumns is the column list selected for an entry.
	entryColumns = "ID, FORM_ID, DATA, SUBMITTED_AT, SOURCE_IP, USER_AGENT, STATUS, SPAM_SCORE"
	// baseEntryListQuery is the filterable base of the entry listing query.
	baseEntryListQuery = "SELECT " + entryColumns + " FROM FORM_ENTRIES WHERE FORM_ID = %s"
	// baseEntryCountQuery is the filterable base of the entry count query.
	baseEntryCountQuery = "SELECT COUNT(*) AS TOTAL FROM FORM_ENTRIES WHERE FORM_ID = %s"
	// entryListTail orders and pages the entry listing.
	entryListTail = "ORDER BY SUBMITTED_AT DESC, ID LIMIT %s OFFSET %s"
)

const (
	queryIDEntryList  = "FRQ-ENTRY_MGT-03"
	queryIDEntryCount = "FRQ-ENTRY_MGT-04"
)

var (
	// queryCreateEntry is the query to create a new entry.
	queryCreateEntry = model.DBQuery{
		ID: "FRQ-ENTRY_MGT-01",
		Query: "INSERT INTO FORM_ENTRIES (ID, FORM_ID, DATA, SUBMITTED_AT, SOURCE_IP, USER_AGENT, STATUS, " +
			"SPAM_SCORE) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}
	// queryGetEntryByID is the query to get an entry by its ID.
	queryGetEntryByID = model.DBQuery{
		ID:    "FRQ-ENTRY_MGT-02",
		Query: "SELECT " + entryColumns + " FROM FORM_ENTRIES WHERE ID = $1",
	}
	// queryGetAllEntries is the query to get every entry of a form, newest first.
	queryGetAllEntries = model.DBQuery{
		ID:    "FRQ-ENTRY_MGT-05",
		Query: "SELECT " + entryColumns + " FROM FORM_ENTRIES WHERE FORM_ID = $1 ORDER BY SUBMITTED_AT DESC, ID",
	}
	// queryUpdateEntryStatusByID is the query to update the status of an entry.
	queryUpdateEntryStatusByID = model.DBQuery{
		ID:    "FRQ-ENTRY_MGT-06",
		Query: "UPDATE FORM_ENTRIES SET STATUS = $2 WHERE ID = $1",
	}
	// queryDeleteEntryByID is the query to delete an entry by its ID.
	queryDeleteEntryByID = model.DBQuery{
		ID:    "FRQ-ENTRY_MGT-07",
		Query: "DELETE FROM FORM_ENTRIES WHERE ID = $1",
	}
	// queryGetStatusCounts is the query to count the entries of a form per status.
	queryGetStatusCounts = model.DBQuery{
		ID:    "FRQ-ENTRY_MGT-08",
		Query: "SELECT STATUS, COUNT(*) AS TOTAL FROM FORM_ENTRIES WHERE FORM_ID = $1 GROUP BY STATUS",
	}
	// queryGetDailyCounts is the query to count the entries of a form per UTC day since a point in time.
	queryGetDailyCounts = model.DBQuery{
		ID: "FRQ-ENTRY_MGT-09",
		Query: "SELECT SUBSTR(SUBMITTED_AT, 1, 10) AS DAY, COUNT(*) AS TOTAL FROM FORM_ENTRIES " +
			"WHERE FORM_ID = $1 AND SUBMITTED_AT >= $2 GROUP BY SUBSTR(SUBMITTED_AT, 1, 10) ORDER BY DAY",
		PostgresQuery: "SELECT TO_CHAR(SUBMITTED_AT AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS DAY, COUNT(*) AS TOTAL " +
			"FROM FORM_ENTRIES WHERE FORM_ID = $1 AND SUBMITTED_AT >= $2 " +
			"GROUP BY TO_CHAR(SUBMITTED_AT AT TIME ZONE 'UTC', 'YYYY-MM-DD') ORDER BY DAY",
	}
	// queryGetLatestSubmission is the query to get the time of the latest entry of a form.
	queryGetLatestSubmission = model.DBQuery{
		ID:    "FRQ-ENTRY_MGT-10",
		Query: "SELECT MAX(SUBMITTED_AT) AS LATEST FROM FORM_ENTRIES WHERE FORM_ID = $1",
	}
)

// buildBulkStatusQuery constructs the query that sets the status of the listed entries of a form.
func buildBulkStatusQuery(formID string, ids []string, status EntryStatus) (model.DBQuery, []interface{}) {
	return buildBulkQuery("FRQ-ENTRY_MGT-11", "UPDATE FORM_ENTRIES SET STATUS = %s WHERE FORM_ID = %s AND ID IN (%s)",
		[]interface{}{string(status), formID}, ids)
}

// buildBulkDeleteQuery constructs the query that deletes the listed entries of a form.
func buildBulkDeleteQuery(formID string, ids []string) (model.DBQuery, []interface{}) {
	return buildBulkQuery("FRQ-ENTRY_MGT-12", "DELETE FROM FORM_ENTRIES WHERE FORM_ID = %s AND ID IN (%s)",
		[]interface{}{formID}, ids)
}

// buildBulkQuery fills the leading placeholders of baseQuery with leadingArgs and the final IN list with ids.
func buildBulkQuery(queryID, baseQuery string, leadingArgs []interface{}, ids []string) (
	model.DBQuery, []interface{}) {
	args := make([]interface{}, 0, len(leadingArgs)+len(ids))
	args = append(args, leadingArgs...)

	postgresPlaceholders := make([]interface{}, 0, len(leadingArgs)+1)
	sqlitePlaceholders := make([]interface{}, 0, len(leadingArgs)+1)
	for i := range leadingArgs {
		postgresPlaceholders = append(postgresPlaceholders, fmt.Sprintf("$%d", i+1))
		sqlitePlaceholders = append(sqlitePlaceholders, "?")
	}

	postgresIn := make([]string, len(ids))
	sqliteIn := make([]string, len(ids))
	for i, id := range ids {
		postgresIn[i] = fmt.Sprintf("$%d", len(leadingArgs)+i+1)
		sqliteIn[i] = "?"
		args = append(args, id)
	}
	postgresPlaceholders = append(postgresPlaceholders, strings.Join(postgresIn, ","))
	sqlitePlaceholders = append(sqlitePlaceholders, strings.Join(sqliteIn, ","))

	postgresQuery := fmt.Sprintf(baseQuery, postgresPlaceholders...)
	return model.DBQuery{
		ID:            queryID,
		Query:         postgresQuery,
		PostgresQuery: postgresQuery,
		SQLiteQuery:   fmt.Sprintf(baseQuery, sqlitePlaceholders...),
	}, args
}
