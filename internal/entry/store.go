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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magamawi/TiD-Forms/internal/form/model"
	"github.com/magamawi/TiD-Forms/internal/system/constants"
	dbmodel "github.com/magamawi/TiD-Forms/internal/system/database/model"
	"github.com/magamawi/TiD-Forms/internal/system/database/provider"
	dbutils "github.com/magamawi/TiD-Forms/internal/system/database/utils"
	sysutils "github.com/magamawi/TiD-Forms/internal/system/utils"
)

// EntryStoreInterface defines the persistence operations for entries.
type EntryStoreInterface interface {
	CreateEntry(ctx context.Context, entry Entry) error
	GetEntryListCount(ctx context.Context, formID string, filter EntryFilter) (int, error)
	GetEntryList(ctx context.Context, formID string, filter EntryFilter, limit, offset int) ([]Entry, error)
	GetAllEntries(ctx context.Context, formID string) ([]Entry, error)
	GetEntry(ctx context.Context, id string) (*Entry, error)
	UpdateEntryStatus(ctx context.Context, id string, status EntryStatus) error
	DeleteEntry(ctx context.Context, id string) error
	UpdateEntriesStatus(ctx context.Context, formID string, ids []string, status EntryStatus) (int, error)
	DeleteEntries(ctx context.Context, formID string, ids []string) (int, error)
	GetStatusCounts(ctx context.Context, formID string) (map[string]int, error)
	GetDailyCounts(ctx context.Context, formID string, since time.Time) ([]DailyCount, error)
	GetLatestSubmission(ctx context.Context, formID string) (*time.Time, error)
}

// entryStore is the default implementation of EntryStoreInterface.
type entryStore struct {
	dbProvider provider.DBProviderInterface
}

// newEntryStore creates a new instance of entryStore.
func newEntryStore(dbProvider provider.DBProviderInterface) EntryStoreInterface {
	return &entryStore{
		dbProvider: dbProvider,
	}
}

// CreateEntry inserts a new entry.
func (s *entryStore) CreateEntry(ctx context.Context, entry Entry) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	dataJSON, err := marshalData(entry.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal entry data: %w", err)
	}

	_, err = dbClient.Execute(ctx, queryCreateEntry, entry.ID, entry.FormID, dataJSON,
		dbutils.FormatTimestamp(entry.SubmittedAt), entry.SourceIP, entry.UserAgent, string(entry.Status),
		entry.SpamScore)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetEntryListCount returns the number of entries of a form matching the filter.
func (s *entryStore) GetEntryListCount(ctx context.Context, formID string, filter EntryFilter) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	query, args, err := dbutils.BuildFilterQuery(queryIDEntryCount, baseEntryCountQuery, []interface{}{formID},
		filterConditions(filter), "", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	results, err := dbClient.Query(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) != 1 {
		return 0, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	total, err := dbutils.ParseInt(results[0]["total"])
	if err != nil {
		return 0, fmt.Errorf("failed to parse entry count: %w", err)
	}
	return int(total), nil
}

// GetEntryList returns a page of the entries of a form matching the filter, newest first.
func (s *entryStore) GetEntryList(ctx context.Context, formID string, filter EntryFilter,
	limit, offset int) ([]Entry, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	query, args, err := dbutils.BuildFilterQuery(queryIDEntryList, baseEntryListQuery, []interface{}{formID},
		filterConditions(filter), entryListTail, []interface{}{limit, offset})
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	results, err := dbClient.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return buildEntriesFromResultRows(results)
}

// GetAllEntries returns every entry of a form, newest first.
func (s *entryStore) GetAllEntries(ctx context.Context, formID string) ([]Entry, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetAllEntries, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return buildEntriesFromResultRows(results)
}

// GetEntry returns the entry with the given ID.
func (s *entryStore) GetEntry(ctx context.Context, id string) (*Entry, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetEntryByID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrEntryNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	entry, err := buildEntryFromResultRow(results[0])
	if err != nil {
		return nil, fmt.Errorf("failed to build entry from result row: %w", err)
	}
	return entry, nil
}

// UpdateEntryStatus sets the status of an entry.
func (s *entryStore) UpdateEntryStatus(ctx context.Context, id string, status EntryStatus) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(ctx, queryUpdateEntryStatusByID, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteEntry deletes an entry. Deleting a missing entry is not an error.
func (s *entryStore) DeleteEntry(ctx context.Context, id string) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(ctx, queryDeleteEntryByID, id); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// UpdateEntriesStatus sets the status of the listed entries of a form and returns how many changed.
func (s *entryStore) UpdateEntriesStatus(ctx context.Context, formID string, ids []string,
	status EntryStatus) (int, error) {
	query, args := buildBulkStatusQuery(formID, ids, status)
	return s.executeBulk(ctx, query, args)
}

// DeleteEntries deletes the listed entries of a form and returns how many were deleted.
func (s *entryStore) DeleteEntries(ctx context.Context, formID string, ids []string) (int, error) {
	query, args := buildBulkDeleteQuery(formID, ids)
	return s.executeBulk(ctx, query, args)
}

func (s *entryStore) executeBulk(ctx context.Context, query dbmodel.DBQuery, args []interface{}) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return int(rowsAffected), nil
}

// GetStatusCounts returns the number of entries of a form per status.
func (s *entryStore) GetStatusCounts(ctx context.Context, formID string) (map[string]int, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetStatusCounts, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	counts := make(map[string]int, len(results))
	for _, row := range results {
		total, err := dbutils.ParseInt(row["total"])
		if err != nil {
			return nil, fmt.Errorf("failed to parse status count: %w", err)
		}
		counts[sysutils.ConvertInterfaceValueToString(row["status"])] = int(total)
	}
	return counts, nil
}

// GetDailyCounts returns the number of entries of a form per UTC day, for days on or after since.
func (s *entryStore) GetDailyCounts(ctx context.Context, formID string, since time.Time) ([]DailyCount, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetDailyCounts, formID, dbutils.FormatTimestamp(since))
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	counts := make([]DailyCount, 0, len(results))
	for _, row := range results {
		total, err := dbutils.ParseInt(row["total"])
		if err != nil {
			return nil, fmt.Errorf("failed to parse daily count: %w", err)
		}
		counts = append(counts, DailyCount{
			Date:  sysutils.ConvertInterfaceValueToString(row["day"]),
			Count: int(total),
		})
	}
	return counts, nil
}

// GetLatestSubmission returns the submission time of the newest entry of a form, or nil when the form
// has no entries.
func (s *entryStore) GetLatestSubmission(ctx context.Context, formID string) (*time.Time, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetLatestSubmission, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 || results[0]["latest"] == nil {
		return nil, nil
	}

	latest, err := dbutils.ParseTimestamp(results[0]["latest"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse latest submission: %w", err)
	}
	return &latest, nil
}

// marshalData encodes entry data as stored. HTML characters are not escaped.
func marshalData(data model.Data) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func filterConditions(filter EntryFilter) []dbutils.Condition {
	conditions := make([]dbutils.Condition, 0, 4)
	if filter.Status != "" {
		conditions = append(conditions, dbutils.Condition{
			Column: "STATUS", Operator: dbutils.OperatorEqual, Value: string(filter.Status),
		})
	}
	if filter.Search != "" {
		conditions = append(conditions, dbutils.Condition{
			Column: "DATA", Operator: dbutils.OperatorContains, Value: dbutils.EscapeLikePattern(filter.Search),
		})
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, dbutils.Condition{
			Column: "SUBMITTED_AT", Operator: dbutils.OperatorGreaterOrEqual,
			Value: dbutils.FormatTimestamp(filter.From),
		})
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, dbutils.Condition{
			Column: "SUBMITTED_AT", Operator: dbutils.OperatorLess,
			Value: dbutils.FormatTimestamp(filter.To.AddDate(0, 0, 1)),
		})
	}
	return conditions
}

func buildEntriesFromResultRows(results []map[string]interface{}) ([]Entry, error) {
	entries := make([]Entry, 0, len(results))
	for _, row := range results {
		entry, err := buildEntryFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build entry from result row: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// buildEntryFromResultRow constructs an entry from a database result row.
func buildEntryFromResultRow(row map[string]interface{}) (*Entry, error) {
	id, ok := row["id"].(string)
	if !ok {
		return nil, errors.New("failed to parse id as string")
	}
	formID, ok := row["form_id"].(string)
	if !ok {
		return nil, errors.New("failed to parse form_id as string")
	}

	data := model.Data{}
	if rawData := sysutils.ConvertInterfaceValueToString(row["data"]); rawData != "" {
		if err := json.Unmarshal([]byte(rawData), &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry data: %w", err)
		}
	}

	submittedAt, err := dbutils.ParseTimestamp(row["submitted_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse submitted_at: %w", err)
	}

	spamScore := int64(0)
	if row["spam_score"] != nil {
		spamScore, err = dbutils.ParseInt(row["spam_score"])
		if err != nil {
			return nil, fmt.Errorf("failed to parse spam_score: %w", err)
		}
	}

	return &Entry{
		ID:          id,
		FormID:      formID,
		Data:        data,
		SubmittedAt: submittedAt,
		SourceIP:    sysutils.ConvertInterfaceValueToString(row["source_ip"]),
		UserAgent:   sysutils.ConvertInterfaceValueToString(row["user_agent"]),
		Status:      EntryStatus(sysutils.ConvertInterfaceValueToString(row["status"])),
		SpamScore:   int(spamScore),
	}, nil
}
