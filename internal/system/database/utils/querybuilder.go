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

// Package utils provides utility functions for building dialect specific database queries.
package utils

import (
	"fmt"
	"strings"

	"github.com/magamawi/TiD-Forms/internal/system/database/model"
)

// Operator is a comparison operator supported in filter conditions.
type Operator string

const (
	// OperatorEqual matches values equal to the argument.
	OperatorEqual Operator = "="
	// OperatorGreaterOrEqual matches values greater than or equal to the argument.
	OperatorGreaterOrEqual Operator = ">="
	// OperatorLess matches values strictly less than the argument.
	OperatorLess Operator = "<"
	// OperatorContains matches text values containing the argument, ignoring case.
	OperatorContains Operator = "CONTAINS"
)

// Condition is a single predicate appended to the WHERE clause of a base query.
type Condition struct {
	Column   string
	Operator Operator
	Value    interface{}
}

// BuildFilterQuery builds a query from a base query, optional filter conditions and a trailing clause.
// The base query and the tail mark each positional argument with %s, which is replaced by the
// placeholder syntax of each database type. The base query must end inside a WHERE clause.
func BuildFilterQuery(queryID, baseQuery string, baseArgs []interface{}, conditions []Condition,
	tail string, tailArgs []interface{}) (model.DBQuery, []interface{}, error) {
	if strings.Count(baseQuery, "%s") != len(baseArgs) {
		return model.DBQuery{}, nil, fmt.Errorf("base query expects %d arguments, got %d",
			strings.Count(baseQuery, "%s"), len(baseArgs))
	}
	if strings.Count(tail, "%s") != len(tailArgs) {
		return model.DBQuery{}, nil, fmt.Errorf("tail expects %d arguments, got %d",
			strings.Count(tail, "%s"), len(tailArgs))
	}

	args := make([]interface{}, 0, len(baseArgs)+len(conditions)+len(tailArgs))
	args = append(args, baseArgs...)

	postgres := &strings.Builder{}
	sqlite := &strings.Builder{}
	postgres.WriteString(baseQuery)
	sqlite.WriteString(baseQuery)

	for _, condition := range conditions {
		if err := validateKey(condition.Column); err != nil {
			return model.DBQuery{}, nil, fmt.Errorf("invalid column name: %w", err)
		}
		switch condition.Operator {
		case OperatorEqual, OperatorGreaterOrEqual, OperatorLess:
			fmt.Fprintf(postgres, " AND %s %s %%s", condition.Column, condition.Operator)
			fmt.Fprintf(sqlite, " AND %s %s %%s", condition.Column, condition.Operator)
		case OperatorContains:
			fmt.Fprintf(postgres, " AND %s ILIKE %%s ESCAPE '\\'", condition.Column)
			fmt.Fprintf(sqlite, " AND %s LIKE %%s ESCAPE '\\'", condition.Column)
		default:
			return model.DBQuery{}, nil, fmt.Errorf("unsupported operator: %s", condition.Operator)
		}
		args = append(args, condition.Value)
	}

	if tail != "" {
		postgres.WriteString(" " + tail)
		sqlite.WriteString(" " + tail)
	}
	args = append(args, tailArgs...)

	postgresQuery := numberPlaceholders(postgres.String())
	resultQuery := model.DBQuery{
		ID:            queryID,
		Query:         postgresQuery,
		PostgresQuery: postgresQuery,
		SQLiteQuery:   strings.ReplaceAll(sqlite.String(), "%s", "?"),
	}

	return resultQuery, args, nil
}

// EscapeLikePattern escapes the LIKE wildcards in the value and wraps it for a substring match.
func EscapeLikePattern(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(value) + "%"
}

// numberPlaceholders replaces each %s marker with the PostgreSQL positional placeholder.
func numberPlaceholders(query string) string {
	var b strings.Builder
	index := 1
	for {
		i := strings.Index(query, "%s")
		if i < 0 {
			b.WriteString(query)
			return b.String()
		}
		b.WriteString(query[:i])
		fmt.Fprintf(&b, "$%d", index)
		index++
		query = query[i+2:]
	}
}

// validateKey ensures that the provided key contains only safe characters (alphanumeric and underscores).
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key must not be empty")
	}
	for _, char := range key {
		if !(char >= 'a' && char <= 'z' || char >= 'A' && char <= 'Z' ||
			char >= '0' && char <= '9' || char == '_' || char == '.') {
			return fmt.Errorf("key '%s' contains invalid characters", key)
		}
	}
	return nil
}
