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
	"net/url"
	"time"

	"github.com/magamawi/TiD-Forms/internal/form/model"
	"github.com/magamawi/TiD-Forms/internal/system/utils"
)

// filterDateLayout is the layout of the from and to filters.
const filterDateLayout = "2006-01-02"

// EntryStatus is the review status of an entry.
type EntryStatus string

const (
	// EntryStatusUnread marks an entry no operator has reviewed yet.
	EntryStatusUnread EntryStatus = "unread"
	// EntryStatusRead marks a reviewed entry.
	EntryStatusRead EntryStatus = "read"
)

// IsValid reports whether the status is a known entry status.
func (s EntryStatus) IsValid() bool {
	return s == EntryStatusUnread || s == EntryStatusRead
}

// BulkAction is an action applied to several entries of a form at once.
type BulkAction string

const (
	// BulkActionDelete deletes the selected entries.
	BulkActionDelete BulkAction = "delete"
	// BulkActionMarkRead marks the selected entries as read.
	BulkActionMarkRead BulkAction = "mark_read"
	// BulkActionMarkUnread marks the selected entries as unread.
	BulkActionMarkUnread BulkAction = "mark_unread"
)

// IsValid reports whether the action is a known bulk action.
func (a BulkAction) IsValid() bool {
	return a == BulkActionDelete || a == BulkActionMarkRead || a == BulkActionMarkUnread
}

// Entry is a stored submission of a form.
type Entry struct {
	ID          string      `json:"id"`
	FormID      string      `json:"formId"`
	Data        model.Data  `json:"data"`
	SubmittedAt time.Time   `json:"submittedAt"`
	SourceIP    string      `json:"sourceIp"`
	UserAgent   string      `json:"userAgent"`
	Status      EntryStatus `json:"status"`
	SpamScore   int         `json:"spamScore"`
}

// EntryFilter narrows an entry listing. From and To are UTC days and both are inclusive. Zero values
// do not filter.
type EntryFilter struct {
	Status EntryStatus
	Search string
	From   time.Time
	To     time.Time
}

// encode returns the filter as an encoded query string.
func (f EntryFilter) encode() string {
	query := url.Values{}
	if f.Status != "" {
		query.Set("status", string(f.Status))
	}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if !f.From.IsZero() {
		query.Set("from", f.From.UTC().Format(filterDateLayout))
	}
	if !f.To.IsZero() {
		query.Set("to", f.To.UTC().Format(filterDateLayout))
	}
	return query.Encode()
}

// EntryListResponse is a page of entries of a form.
type EntryListResponse struct {
	TotalResults int          `json:"totalResults"`
	StartIndex   int          `json:"startIndex"`
	Count        int          `json:"count"`
	Entries      []Entry      `json:"entries"`
	Links        []utils.Link `json:"links"`
}

// DailyCount is the number of entries submitted on a day.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// EntryStatistics summarizes the entries of a form.
type EntryStatistics struct {
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"byStatus"`
	Daily            []DailyCount   `json:"daily"`
	LatestSubmission *time.Time     `json:"latestSubmission,omitempty"`
}

// BulkActionRequest is the request body of a bulk entry action.
type BulkActionRequest struct {
	Action BulkAction `json:"action"`
	IDs    []string   `json:"ids"`
}

// BulkActionResponse reports how many entries a bulk action changed.
type BulkActionResponse struct {
	Action   BulkAction `json:"action"`
	Affected int        `json:"affected"`
}

type entryStatusRequest struct {
	Status string `json:"status"`
}
