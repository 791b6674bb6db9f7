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

// Package entry handles the storage, review and export of form entries.
package entry

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/form/model"
	"github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"
	"github.com/magamawi/TiD-Forms/internal/system/log"
	"github.com/magamawi/TiD-Forms/internal/system/utils"
)

const (
	loggerComponentNameService = "EntryService"
	// statisticsWindowDays is the number of days before today covered by the daily counts.
	statisticsWindowDays = 30
)

// EntryServiceInterface defines the interface for entry management operations.
type EntryServiceInterface interface {
	CreateEntry(ctx context.Context, formID string, data model.Data, sourceIP, userAgent string) (
		*Entry, *serviceerror.ServiceError)
	GetEntryList(ctx context.Context, formID string, filter EntryFilter, limit, offset int) (
		*EntryListResponse, *serviceerror.ServiceError)
	GetEntry(ctx context.Context, id string) (*Entry, *serviceerror.ServiceError)
	UpdateEntryStatus(ctx context.Context, id string, status EntryStatus) (*Entry, *serviceerror.ServiceError)
	DeleteEntry(ctx context.Context, id string) *serviceerror.ServiceError
	BulkAction(ctx context.Context, formID string, action BulkAction, ids []string) (
		*BulkActionResponse, *serviceerror.ServiceError)
	GetStatistics(ctx context.Context, formID string) (*EntryStatistics, *serviceerror.ServiceError)
	PrepareExport(ctx context.Context, formID string) (*Export, *serviceerror.ServiceError)
	ExportEntries(ctx context.Context, formID string, w io.Writer) (*Export, *serviceerror.ServiceError)
}

// entryService is the default implementation of EntryServiceInterface.
type entryService struct {
	entryStore  EntryStoreInterface
	formService form.FormServiceInterface
	now         func() time.Time
}

// newEntryService creates a new instance of entryService.
func newEntryService(entryStore EntryStoreInterface, formService form.FormServiceInterface) EntryServiceInterface {
	return &entryService{
		entryStore:  entryStore,
		formService: formService,
		now:         time.Now,
	}
}

// CreateEntry stores validated data as a new unread entry of a form.
func (es *entryService) CreateEntry(ctx context.Context, formID string, data model.Data, sourceIP,
	userAgent string) (*Entry, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if data == nil {
		data = model.Data{}
	}
	entry := Entry{
		ID:          utils.GenerateUUID(),
		FormID:      formID,
		Data:        data,
		SubmittedAt: es.now().UTC(),
		SourceIP:    sourceIP,
		UserAgent:   utils.SanitizeString(userAgent),
		Status:      EntryStatusUnread,
		SpamScore:   0,
	}

	if err := es.entryStore.CreateEntry(ctx, entry); err != nil {
		logger.Error("Failed to create entry", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Entry created", log.String(log.LoggerKeyFormID, formID),
		log.String(log.LoggerKeyEntryID, entry.ID))
	return &entry, nil
}

// GetEntryList retrieves a page of the entries of a form, newest first.
func (es *entryService) GetEntryList(ctx context.Context, formID string, filter EntryFilter, limit,
	offset int) (*EntryListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if err := utils.ValidatePaginationParams(limit, offset); err != nil {
		if errors.Is(err, utils.ErrInvalidOffset) {
			return nil, &ErrorInvalidOffset
		}
		return nil, &ErrorInvalidLimit
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, &ErrorInvalidEntryStatus
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, &ErrorInvalidDateFilter
	}
	if _, svcErr := es.getForm(ctx, formID); svcErr != nil {
		return nil, svcErr
	}

	storeFilter := filter
	storeFilter.Search = strings.TrimSpace(filter.Search)

	totalCount, err := es.entryStore.GetEntryListCount(ctx, formID, storeFilter)
	if err != nil {
		logger.Error("Failed to get entry count", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	entries, err := es.entryStore.GetEntryList(ctx, formID, storeFilter, limit, offset)
	if err != nil {
		logger.Error("Failed to list entries", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &EntryListResponse{
		TotalResults: totalCount,
		StartIndex:   offset + 1,
		Count:        len(entries),
		Entries:      entries,
		Links: utils.BuildPaginationLinks("/forms/"+formID+"/entries", limit, offset, totalCount,
			filter.encode()),
	}, nil
}

// GetEntry retrieves an entry by its ID.
func (es *entryService) GetEntry(ctx context.Context, id string) (*Entry, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if strings.TrimSpace(id) == "" {
		return nil, &ErrorInvalidEntryID
	}

	entry, err := es.entryStore.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, &ErrorEntryNotFound
		}
		logger.Error("Failed to get entry", log.String(log.LoggerKeyEntryID, id), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return entry, nil
}

// UpdateEntryStatus marks an entry as read or unread.
func (es *entryService) UpdateEntryStatus(ctx context.Context, id string, status EntryStatus) (*Entry,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if strings.TrimSpace(id) == "" {
		return nil, &ErrorInvalidEntryID
	}
	if !status.IsValid() {
		return nil, &ErrorInvalidEntryStatus
	}

	if err := es.entryStore.UpdateEntryStatus(ctx, id, status); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, &ErrorEntryNotFound
		}
		logger.Error("Failed to update entry status", log.String(log.LoggerKeyEntryID, id), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return es.GetEntry(ctx, id)
}

// DeleteEntry deletes an entry. Deleting a missing entry succeeds.
func (es *entryService) DeleteEntry(ctx context.Context, id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if strings.TrimSpace(id) == "" {
		return &ErrorInvalidEntryID
	}

	if err := es.entryStore.DeleteEntry(ctx, id); err != nil {
		logger.Error("Failed to delete entry", log.String(log.LoggerKeyEntryID, id), log.Error(err))
		return &ErrorInternalServerError
	}
	return nil
}

// BulkAction deletes or changes the status of the listed entries of a form. IDs of entries that
// belong to another form are ignored.
func (es *entryService) BulkAction(ctx context.Context, formID string, action BulkAction, ids []string) (
	*BulkActionResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if !action.IsValid() {
		return nil, &ErrorInvalidBulkAction
	}
	selected := uniqueIDs(ids)
	if len(selected) == 0 {
		return nil, &ErrorEmptyBulkSelection
	}

	var (
		affected int
		err      error
	)
	switch action {
	case BulkActionDelete:
		affected, err = es.entryStore.DeleteEntries(ctx, formID, selected)
	case BulkActionMarkRead:
		affected, err = es.entryStore.UpdateEntriesStatus(ctx, formID, selected, EntryStatusRead)
	case BulkActionMarkUnread:
		affected, err = es.entryStore.UpdateEntriesStatus(ctx, formID, selected, EntryStatusUnread)
	}
	if err != nil {
		logger.Error("Failed to apply bulk action", log.String(log.LoggerKeyFormID, formID),
			log.String("action", string(action)), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Bulk action applied", log.String(log.LoggerKeyFormID, formID),
		log.String("action", string(action)), log.Int("affected", affected))
	return &BulkActionResponse{Action: action, Affected: affected}, nil
}

// GetStatistics summarizes the entries of a form.
func (es *entryService) GetStatistics(ctx context.Context, formID string) (*EntryStatistics,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if _, svcErr := es.getForm(ctx, formID); svcErr != nil {
		return nil, svcErr
	}

	byStatus, err := es.entryStore.GetStatusCounts(ctx, formID)
	if err != nil {
		logger.Error("Failed to count entries by status", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	today := es.now().UTC().Truncate(24 * time.Hour)
	daily, err := es.entryStore.GetDailyCounts(ctx, formID, today.AddDate(0, 0, -statisticsWindowDays))
	if err != nil {
		logger.Error("Failed to count entries by day", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	latest, err := es.entryStore.GetLatestSubmission(ctx, formID)
	if err != nil {
		logger.Error("Failed to get latest submission", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	stats := &EntryStatistics{
		ByStatus:         map[string]int{string(EntryStatusUnread): 0, string(EntryStatusRead): 0},
		Daily:            daily,
		LatestSubmission: latest,
	}
	for status, count := range byStatus {
		stats.ByStatus[status] = count
		stats.Total += count
	}
	return stats, nil
}

// PrepareExport loads the fields and entries of a form for a CSV export.
func (es *entryService) PrepareExport(ctx context.Context, formID string) (*Export, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	compiled, svcErr := es.getForm(ctx, formID)
	if svcErr != nil {
		return nil, svcErr
	}

	entries, err := es.entryStore.GetAllEntries(ctx, formID)
	if err != nil {
		logger.Error("Failed to load entries for export", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &Export{
		Filename: exportFilename(compiled.Name, es.now()),
		Fields:   compiled.Schema.Fields(),
		Entries:  entries,
	}, nil
}

// ExportEntries writes the CSV export of a form to w.
func (es *entryService) ExportEntries(ctx context.Context, formID string, w io.Writer) (*Export,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	export, svcErr := es.PrepareExport(ctx, formID)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := export.WriteCSV(w); err != nil {
		logger.Error("Failed to write export", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return export, nil
}

// getForm loads the compiled form the entries belong to.
func (es *entryService) getForm(ctx context.Context, formID string) (*form.CompiledForm,
	*serviceerror.ServiceError) {
	compiled, svcErr := es.formService.GetCompiledForm(ctx, formID)
	if svcErr == nil {
		return compiled, nil
	}
	if svcErr.Type == serviceerror.ClientErrorType {
		return nil, &ErrorFormNotFound
	}
	return nil, &ErrorInternalServerError
}

// uniqueIDs drops blank and repeated IDs, keeping the first occurrence order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
