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

// Package form handles the form management operations.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/magamawi/TiD-Forms/internal/form/model"
	"github.com/magamawi/TiD-Forms/internal/system/cache"
	"github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"
	"github.com/magamawi/TiD-Forms/internal/system/log"
	"github.com/magamawi/TiD-Forms/internal/system/utils"
)

const loggerComponentNameService = "FormService"

// FormServiceInterface defines the interface for form management operations.
type FormServiceInterface interface {
	GetFormList(ctx context.Context, limit, offset int, status FormStatus) (
		*FormListResponse, *serviceerror.ServiceError)
	CreateForm(ctx context.Context, request FormRequest) (*Form, *serviceerror.ServiceError)
	GetForm(ctx context.Context, id string) (*Form, *serviceerror.ServiceError)
	GetCompiledForm(ctx context.Context, id string) (*CompiledForm, *serviceerror.ServiceError)
	UpdateForm(ctx context.Context, id string, request FormRequest) (*Form, *serviceerror.ServiceError)
	UpdateFormStatus(ctx context.Context, id string, status FormStatus) (*Form, *serviceerror.ServiceError)
	DuplicateForm(ctx context.Context, id string) (*Form, *serviceerror.ServiceError)
	DeleteForm(ctx context.Context, id string) *serviceerror.ServiceError
	GetTemplates() []Template
	GetThemes() []Theme
	GetFieldTypes() []FieldTypeInfo
}

// formService is the default implementation of FormServiceInterface.
type formService struct {
	formStore      FormStoreInterface
	templates      map[string]Template
	reservedFields map[string]struct{}
	compiledForms  cache.CacheInterface[*CompiledForm]
	cacheMu        sync.Mutex
	generation     uint64
	now            func() time.Time
}

// newFormService creates a new instance of formService. Field names in reservedFields cannot be used
// by form fields. Compiled forms are kept in compiledForms until the form changes.
func newFormService(formStore FormStoreInterface, reservedFields []string,
	compiledForms cache.CacheInterface[*CompiledForm]) (FormServiceInterface, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	reserved := make(map[string]struct{}, len(reservedFields))
	for _, name := range reservedFields {
		if name != "" {
			reserved[name] = struct{}{}
		}
	}

	return &formService{
		formStore:      formStore,
		templates:      templates,
		reservedFields: reserved,
		compiledForms:  compiledForms,
		now:            time.Now,
	}, nil
}

// GetFormList retrieves a page of forms, optionally filtered by status.
func (fs *formService) GetFormList(ctx context.Context, limit, offset int, status FormStatus) (
	*FormListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if err := utils.ValidatePaginationParams(limit, offset); err != nil {
		if errors.Is(err, utils.ErrInvalidOffset) {
			return nil, &ErrorInvalidOffset
		}
		return nil, &ErrorInvalidLimit
	}
	if status != "" && !status.IsValid() {
		return nil, &ErrorInvalidFormStatus
	}

	totalCount, err := fs.formStore.GetFormListCount(ctx, status)
	if err != nil {
		logger.Error("Failed to get form count", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	forms, err := fs.formStore.GetFormList(ctx, limit, offset, status)
	if err != nil {
		logger.Error("Failed to list forms", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	extraQuery := ""
	if status != "" {
		extraQuery = url.Values{"status": {string(status)}}.Encode()
	}

	return &FormListResponse{
		TotalResults: totalCount,
		StartIndex:   offset + 1,
		Count:        len(forms),
		Forms:        forms,
		Links:        utils.BuildPaginationLinks("/forms", limit, offset, totalCount, extraQuery),
	}, nil
}

// CreateForm creates a new form from the request, falling back to a template for the fields and
// settings the request leaves out.
func (fs *formService) CreateForm(ctx context.Context, request FormRequest) (*Form, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	name := strings.TrimSpace(request.Name)
	description := strings.TrimSpace(request.Description)
	fields := request.Fields
	baseSettings := Settings{}

	templateID := strings.TrimSpace(request.Template)
	if templateID != "" || isEmptyJSON(fields) {
		if templateID == "" {
			templateID = TemplateBlank
		}
		template, ok := fs.templates[templateID]
		if !ok {
			return nil, &ErrorTemplateNotFound
		}
		if isEmptyJSON(fields) {
			fields = template.Fields
		}
		if template.Settings != nil {
			baseSettings = *template.Settings
		}
		if templateID != TemplateBlank {
			if name == "" {
				name = template.Name
			}
			if description == "" {
				description = template.Description
			}
		}
	}

	if name == "" {
		return nil, &ErrorInvalidFormName
	}

	compactFields, svcErr := fs.compileFields(fields)
	if svcErr != nil {
		return nil, svcErr
	}

	settings, err := validateSettings(mergeSettings(baseSettings, request.Settings))
	if err != nil {
		return nil, serviceerror.WithDetail(ErrorInvalidFormSettings, err.Error())
	}

	status := request.Status
	if status == "" {
		status = FormStatusActive
	}
	if !status.IsValid() {
		return nil, &ErrorInvalidFormStatus
	}

	now := fs.now().UTC()
	form := Form{
		ID:          utils.GenerateUUID(),
		Name:        name,
		Description: description,
		Fields:      compactFields,
		Settings:    settings,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := fs.formStore.CreateForm(ctx, form); err != nil {
		logger.Error("Failed to create form", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Successfully created form", log.String(log.LoggerKeyFormID, form.ID))
	return &form, nil
}

// GetForm retrieves a form by its ID.
func (fs *formService) GetForm(ctx context.Context, id string) (*Form, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if strings.TrimSpace(id) == "" {
		return nil, &ErrorInvalidFormID
	}

	form, err := fs.formStore.GetForm(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return nil, &ErrorFormNotFound
		}
		logger.Error("Failed to get form", log.String(log.LoggerKeyFormID, id), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return form, nil
}

// GetCompiledForm retrieves a form together with its compiled schema. The returned value is shared with
// the cache and must not be modified.
func (fs *formService) GetCompiledForm(ctx context.Context, id string) (*CompiledForm,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if compiled, ok := fs.compiledForms.Get(id); ok {
		return compiled, nil
	}
	generation := fs.currentGeneration()

	form, svcErr := fs.GetForm(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	schema, err := model.CompileSchema(form.Fields)
	if err != nil {
		logger.Error("Stored form schema does not compile", log.String(log.LoggerKeyFormID, id), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	compiled := &CompiledForm{Form: *form, Schema: schema}
	fs.cacheCompiledForm(id, compiled, generation)
	return compiled, nil
}

func (fs *formService) currentGeneration() uint64 {
	fs.cacheMu.Lock()
	defer fs.cacheMu.Unlock()
	return fs.generation
}

// cacheCompiledForm caches a compiled form unless a form changed after the read that produced it began.
func (fs *formService) cacheCompiledForm(id string, compiled *CompiledForm, generation uint64) {
	fs.cacheMu.Lock()
	defer fs.cacheMu.Unlock()
	if fs.generation == generation {
		fs.compiledForms.Set(id, compiled)
	}
}

// evictCompiledForm drops the cached form and stops in flight lookups from caching what they read.
func (fs *formService) evictCompiledForm(id string) {
	fs.cacheMu.Lock()
	defer fs.cacheMu.Unlock()
	fs.generation++
	fs.compiledForms.Delete(id)
}

// UpdateForm updates the name, description, fields, settings and status of a form. Fields, settings and
// status left out of the request keep their current values.
func (fs *formService) UpdateForm(ctx context.Context, id string, request FormRequest) (*Form,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, &ErrorInvalidFormName
	}

	form, svcErr := fs.GetForm(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	if !isEmptyJSON(request.Fields) {
		compactFields, svcErr := fs.compileFields(request.Fields)
		if svcErr != nil {
			return nil, svcErr
		}
		form.Fields = compactFields
	}

	settings, err := validateSettings(mergeSettings(form.Settings, request.Settings))
	if err != nil {
		return nil, serviceerror.WithDetail(ErrorInvalidFormSettings, err.Error())
	}

	if request.Status != "" {
		if !request.Status.IsValid() {
			return nil, &ErrorInvalidFormStatus
		}
		form.Status = request.Status
	}

	form.Name = name
	form.Description = strings.TrimSpace(request.Description)
	form.Settings = settings
	form.UpdatedAt = fs.now().UTC()

	if err := fs.formStore.UpdateForm(ctx, form); err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return nil, &ErrorFormNotFound
		}
		logger.Error("Failed to update form", log.String(log.LoggerKeyFormID, id), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	fs.evictCompiledForm(id)

	return form, nil
}

// UpdateFormStatus activates or deactivates a form.
func (fs *formService) UpdateFormStatus(ctx context.Context, id string, status FormStatus) (*Form,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if !status.IsValid() {
		return nil, &ErrorInvalidFormStatus
	}

	form, svcErr := fs.GetForm(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	form.Status = status
	form.UpdatedAt = fs.now().UTC()
	if err := fs.formStore.UpdateFormStatus(ctx, form); err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return nil, &ErrorFormNotFound
		}
		logger.Error("Failed to update form status", log.String(log.LoggerKeyFormID, id), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	fs.evictCompiledForm(id)

	return form, nil
}

// DuplicateForm creates an active copy of a form with " (Copy)" appended to its name.
func (fs *formService) DuplicateForm(ctx context.Context, id string) (*Form, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	original, svcErr := fs.GetForm(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	now := fs.now().UTC()
	duplicate := Form{
		ID:          utils.GenerateUUID(),
		Name:        original.Name + " (Copy)",
		Description: original.Description,
		Fields:      original.Fields,
		Settings:    original.Settings,
		Status:      FormStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := fs.formStore.CreateForm(ctx, duplicate); err != nil {
		logger.Error("Failed to duplicate form", log.String(log.LoggerKeyFormID, id), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &duplicate, nil
}

// DeleteForm deletes a form and all of its entries. Deleting a missing form succeeds.
func (fs *formService) DeleteForm(ctx context.Context, id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if strings.TrimSpace(id) == "" {
		return &ErrorInvalidFormID
	}

	if err := fs.formStore.DeleteForm(ctx, id); err != nil {
		logger.Error("Failed to delete form", log.String(log.LoggerKeyFormID, id), log.Error(err))
		return &ErrorInternalServerError
	}
	fs.evictCompiledForm(id)

	return nil
}

// GetTemplates returns the built in form templates.
func (fs *formService) GetTemplates() []Template {
	return sortedTemplates(fs.templates)
}

// GetThemes returns the presentation theme catalog.
func (fs *formService) GetThemes() []Theme {
	result := make([]Theme, len(themes))
	copy(result, themes)
	return result
}

// GetFieldTypes returns the supported field types.
func (fs *formService) GetFieldTypes() []FieldTypeInfo {
	return fieldTypeCatalog()
}

// compileFields checks that the field descriptors compile and use no reserved names, and returns
// them in compact form.
func (fs *formService) compileFields(fields json.RawMessage) (json.RawMessage, *serviceerror.ServiceError) {
	schema, err := model.CompileSchema(fields)
	if err != nil {
		return nil, serviceerror.WithDetail(ErrorInvalidFormSchema, err.Error())
	}

	for _, info := range schema.Fields() {
		if _, reserved := fs.reservedFields[info.Name]; reserved {
			return nil, serviceerror.WithDetail(ErrorReservedFieldName, fmt.Sprintf("'%s'", info.Name))
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, fields); err != nil {
		return nil, serviceerror.WithDetail(ErrorInvalidFormSchema, err.Error())
	}
	return compact.Bytes(), nil
}

// isEmptyJSON reports whether a raw JSON value is absent or null.
func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
