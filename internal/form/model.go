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
	"encoding/json"
	"time"

	"github.com/magamawi/TiD-Forms/internal/form/model"
	"github.com/magamawi/TiD-Forms/internal/system/utils"
)

// FormStatus is the publication status of a form.
type FormStatus string

const (
	// FormStatusActive marks a form that accepts public fetches and submissions.
	FormStatusActive FormStatus = "active"
	// FormStatusInactive marks a form hidden from the public surface.
	FormStatusInactive FormStatus = "inactive"
)

// IsValid reports whether the status is a known form status.
func (s FormStatus) IsValid() bool {
	return s == FormStatusActive || s == FormStatusInactive
}

// Form is an operator defined form.
type Form struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Fields      json.RawMessage `json:"fields"`
	Settings    Settings        `json:"settings"`
	Status      FormStatus      `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CompiledForm is a form together with its compiled schema.
type CompiledForm struct {
	Form
	Schema *model.Schema `json:"-"`
}

// FormBasic is a form summary returned by listings.
type FormBasic struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      FormStatus `json:"status"`
	Theme       string     `json:"theme"`
	EntryCount  int        `json:"entryCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FormListResponse is a page of forms.
type FormListResponse struct {
	TotalResults int          `json:"totalResults"`
	StartIndex   int          `json:"startIndex"`
	Count        int          `json:"count"`
	Forms        []FormBasic  `json:"forms"`
	Links        []utils.Link `json:"links"`
}

// FormRequest is the payload for creating or updating a form. On create, Template selects a built in
// template whose fields and settings are used when the request leaves them out.
type FormRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Template    string          `json:"template,omitempty"`
	Fields      json.RawMessage `json:"fields,omitempty"`
	Settings    *Settings       `json:"settings,omitempty"`
	Status      FormStatus      `json:"status,omitempty"`
}

// formStatusRequest is the payload of the status update route.
type formStatusRequest struct {
	Status string `json:"status"`
}

// Template is a built in form template.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Settings    *Settings       `json:"settings,omitempty"`
	Fields      json.RawMessage `json:"fields"`
}

// Theme is a presentation theme in the theme catalog.
type Theme struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// FieldTypeInfo describes a supported field type for form builders.
type FieldTypeInfo struct {
	Type        model.FieldType `json:"type"`
	Label       string          `json:"label"`
	Icon        string          `json:"icon"`
	Description string          `json:"description"`
	Attributes  []string        `json:"attributes"`
}
