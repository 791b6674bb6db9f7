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

package model

const (
	// DBTypePostgres is the database type name of PostgreSQL data sources.
	DBTypePostgres = "postgres"
	// DBTypeSQLite is the database type name of SQLite data sources.
	DBTypeSQLite = "sqlite"
)

// DBQuery represents a database query with a stable identifier. Dialect specific variants
// override the default query for the matching database type.
type DBQuery struct {
	// ID is the unique identifier of the query, used for logging.
	ID string `json:"id"`
	// Query is the default SQL query.
	Query string `json:"query"`
	// PostgresQuery is the PostgreSQL specific variant of the query.
	PostgresQuery string `json:"postgres_query,omitempty"`
	// SQLiteQuery is the SQLite specific variant of the query.
	SQLiteQuery string `json:"sqlite_query,omitempty"`
}

// GetID returns the unique identifier of the query.
func (d *DBQuery) GetID() string {
	return d.ID
}

// GetQuery returns the SQL query to run against the given database type.
func (d *DBQuery) GetQuery(dbType string) string {
	switch dbType {
	case DBTypePostgres:
		if d.PostgresQuery != "" {
			return d.PostgresQuery
		}
	case DBTypeSQLite:
		if d.SQLiteQuery != "" {
			return d.SQLiteQuery
		}
	}
	return d.Query
}
