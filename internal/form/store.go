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

package form

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magamawi/TiD-Forms/internal/system/constants"
	dbmodel "github.com/magamawi/TiD-Forms/internal/system/database/model"
	"github.com/magamawi/TiD-Forms/internal/system/database/provider"
	dbutils "github.com/magamawi/TiD-Forms/internal/system/database/utils"
	sysutils "github.com/magamawi/TiD-Forms/internal/system/utils"
)

// FormStoreInterface defines the persistence operations for forms.
type FormStoreInterface interface {
	CreateForm(ctx context.Context, form Form) error
	GetFormListCount(ctx context.Context, status FormStatus) (int, error)
	GetFormList(ctx context.Context, limit, offset int, status FormStatus) ([]FormBasic, error)
	GetForm(ctx context.Context, id string) (*Form, error)
	UpdateForm(ctx context.Context, form *Form) error
	UpdateFormStatus(ctx context.Context, form *Form) error
	DeleteForm(ctx context.Context, id string) error
}

// formStore is the default implementation of FormStoreInterface.
type formStore struct {
	dbProvider provider.DBProviderInterface
}

// newFormStore creates a new instance of formStore.
func newFormStore(dbProvider provider.DBProviderInterface) FormStoreInterface {
	return &formStore{
		dbProvider: dbProvider,
	}
}

// CreateForm inserts a new form.
func (s *formStore) CreateForm(ctx context.Context, form Form) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	settingsJSON, err := json.Marshal(form.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal form settings: %w", err)
	}

	_, err = dbClient.Execute(ctx, queryCreateForm, form.ID, form.Name, form.Description, string(form.Fields),
		string(settingsJSON), string(form.Status), form.Settings.Theme,
		dbutils.FormatTimestamp(form.CreatedAt), dbutils.FormatTimestamp(form.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetFormListCount returns the number of forms, optionally restricted to a status.
func (s *formStore) GetFormListCount(ctx context.Context, status FormStatus) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	query, args, err := dbutils.BuildFilterQuery(queryIDFormCount, baseFormCountQuery, nil,
		statusConditions(status), "", nil)
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
		return 0, fmt.Errorf("failed to parse form count: %w", err)
	}
	return int(total), nil
}

// GetFormList returns a page of forms, newest first, with the number of entries of each form.
func (s *formStore) GetFormList(ctx context.Context, limit, offset int, status FormStatus) ([]FormBasic, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	query, args, err := dbutils.BuildFilterQuery(queryIDFormList, baseFormListQuery, nil,
		statusConditions(status), formListTail, []interface{}{limit, offset})
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	results, err := dbClient.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	forms := make([]FormBasic, 0, len(results))
	for _, row := range results {
		form, err := buildFormBasicFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build form from result row: %w", err)
		}
		forms = append(forms, *form)
	}

	return forms, nil
}

// GetForm returns the form with the given ID.
func (s *formStore) GetForm(ctx context.Context, id string) (*Form, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetFormByID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrFormNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	form, err := buildFormFromResultRow(results[0])
	if err != nil {
		return nil, fmt.Errorf("failed to build form from result row: %w", err)
	}
	return form, nil
}

// UpdateForm replaces the editable attributes of a form.
func (s *formStore) UpdateForm(ctx context.Context, form *Form) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	settingsJSON, err := json.Marshal(form.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal form settings: %w", err)
	}

	rowsAffected, err := dbClient.Execute(ctx, queryUpdateFormByID, form.ID, form.Name, form.Description,
		string(form.Fields), string(settingsJSON), string(form.Status), form.Settings.Theme,
		dbutils.FormatTimestamp(form.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrFormNotFound
	}

	return nil
}

// UpdateFormStatus stores the status and update time of a form.
func (s *formStore) UpdateFormStatus(ctx context.Context, form *Form) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(ctx, queryUpdateFormStatusByID, form.ID, string(form.Status),
		dbutils.FormatTimestamp(form.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrFormNotFound
	}

	return nil
}

// DeleteForm deletes the entries of a form and then the form itself in one transaction.
func (s *formStore) DeleteForm(ctx context.Context, id string) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.FormsDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, queryDeleteFormEntries, id); err != nil {
		return rollback(tx, fmt.Errorf("failed to delete form entries: %w", err))
	}
	if _, err := tx.Exec(ctx, queryDeleteFormByID, id); err != nil {
		return rollback(tx, fmt.Errorf("failed to delete form: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return rollback(tx, fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// rollback rolls the transaction back and joins any rollback failure to the cause.
func rollback(tx dbmodel.TxInterface, cause error) error {
	if rollbackErr := tx.Rollback(); rollbackErr != nil {
		return errors.Join(cause, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
	}
	return cause
}

func statusConditions(status FormStatus) []dbutils.Condition {
	if status == "" {
		return nil
	}
	return []dbutils.Condition{{Column: "F.STATUS", Operator: dbutils.OperatorEqual, Value: string(status)}}
}

// buildFormFromResultRow constructs a form from a database result row.
func buildFormFromResultRow(row map[string]interface{}) (*Form, error) {
	id, ok := row["id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse id as string")
	}
	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}

	fields := sysutils.ConvertInterfaceValueToString(row["fields"])
	if fields == "" {
		fields = "[]"
	}

	var settings Settings
	if rawSettings := sysutils.ConvertInterfaceValueToString(row["settings"]); rawSettings != "" {
		if err := json.Unmarshal([]byte(rawSettings), &settings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	}

	createdAt, err := dbutils.ParseTimestamp(row["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	updatedAt, err := dbutils.ParseTimestamp(row["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &Form{
		ID:          id,
		Name:        name,
		Description: sysutils.ConvertInterfaceValueToString(row["description"]),
		Fields:      json.RawMessage(fields),
		Settings:    settings.withDefaults(),
		Status:      FormStatus(sysutils.ConvertInterfaceValueToString(row["status"])),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// buildFormBasicFromResultRow constructs a form summary from a listing result row.
func buildFormBasicFromResultRow(row map[string]interface{}) (*FormBasic, error) {
	id, ok := row["id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse id as string")
	}
	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}

	entryCount, err := dbutils.ParseInt(row["entry_count"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse entry_count: %w", err)
	}
	createdAt, err := dbutils.ParseTimestamp(row["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	updatedAt, err := dbutils.ParseTimestamp(row["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	theme := sysutils.ConvertInterfaceValueToString(row["theme"])
	if theme == "" {
		theme = defaultTheme
	}

	return &FormBasic{
		ID:          id,
		Name:        name,
		Description: sysutils.ConvertInterfaceValueToString(row["description"]),
		Status:      FormStatus(sysutils.ConvertInterfaceValueToString(row["status"])),
		Theme:       theme,
		EntryCount:  int(entryCount),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
