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
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"

	"github.com/magamawi/TiD-Forms/internal/form/model"
)

// TemplateBlank is the template used when a create request names neither fields nor a template.
const TemplateBlank = "blank"

//go:embed templates/*.json
var templateFS embed.FS

// templateOrder is the order in which the template catalog is listed.
var templateOrder = []string{TemplateBlank, "newsletter", "contributor", "contact", "feedback"}

var themes = []Theme{
	{
		ID:             "modern",
		Name:           "Modern",
		Description:    "Clean, modern design with gradients and smooth animations",
		PrimaryColor:   "#667eea",
		SecondaryColor: "#764ba2",
	},
	{
		ID:             "professional",
		Name:           "Professional",
		Description:    "Corporate-friendly design with subtle styling",
		PrimaryColor:   "#2c3e50",
		SecondaryColor: "#3498db",
	},
	{
		ID:             "creative",
		Name:           "Creative",
		Description:    "Bold, colorful design for creative industries",
		PrimaryColor:   "#e74c3c",
		SecondaryColor: "#f39c12",
	},
	{
		ID:             "minimal",
		Name:           "Minimal",
		Description:    "Ultra-clean, minimalist design",
		PrimaryColor:   "#34495e",
		SecondaryColor: "#95a5a6",
	},
	{
		ID:             "elegant",
		Name:           "Elegant",
		Description:    "Sophisticated design with elegant typography",
		PrimaryColor:   "#8e44ad",
		SecondaryColor: "#9b59b6",
	},
}

var fieldTypeDetails = map[model.FieldType]struct{ label, icon, description string }{
	model.FieldTypeText:        {"Text Input", "text-width", "Single line text input"},
	model.FieldTypeEmail:       {"Email", "envelope", "Email address input with validation"},
	model.FieldTypeTextarea:    {"Textarea", "align-left", "Multi-line text input"},
	model.FieldTypeSelect:      {"Dropdown", "caret-down", "Dropdown selection"},
	model.FieldTypeRadio:       {"Radio Buttons", "dot-circle", "Single selection from options"},
	model.FieldTypeCheckbox:    {"Checkboxes", "check-square", "Multiple selection from options"},
	model.FieldTypeNumber:      {"Number", "hashtag", "Numeric input"},
	model.FieldTypeTel:         {"Phone", "phone", "Phone number input"},
	model.FieldTypeURL:         {"URL", "link", "Website URL input"},
	model.FieldTypeDate:        {"Date", "calendar", "Date picker"},
	model.FieldTypeGDPRConsent: {"GDPR Consent", "shield-alt", "GDPR compliance checkbox"},
}

// loadTemplates reads the embedded template catalog and checks that every template compiles.
func loadTemplates() (map[string]Template, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read template catalog: %w", err)
	}

	templates := make(map[string]Template, len(entries))
	for _, entry := range entries {
		data, err := templateFS.ReadFile(path.Join("templates", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		var template Template
		if err := json.Unmarshal(data, &template); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
		if _, err := model.CompileSchema(template.Fields); err != nil {
			return nil, fmt.Errorf("template %s has an invalid schema: %w", template.ID, err)
		}
		templates[template.ID] = template
	}

	return templates, nil
}

// sortedTemplates returns the templates in catalog order, followed by any others by ID.
func sortedTemplates(templates map[string]Template) []Template {
	result := make([]Template, 0, len(templates))
	listed := make(map[string]struct{}, len(templateOrder))
	for _, id := range templateOrder {
		if template, ok := templates[id]; ok {
			result = append(result, template)
			listed[id] = struct{}{}
		}
	}

	rest := make([]string, 0)
	for id := range templates {
		if _, ok := listed[id]; !ok {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		result = append(result, templates[id])
	}
	return result
}

// fieldTypeCatalog describes every supported field type.
func fieldTypeCatalog() []FieldTypeInfo {
	catalog := make([]FieldTypeInfo, 0, len(model.FieldTypes))
	for _, fieldType := range model.FieldTypes {
		details := fieldTypeDetails[fieldType]
		catalog = append(catalog, FieldTypeInfo{
			Type:        fieldType,
			Label:       details.label,
			Icon:        details.icon,
			Description: details.description,
			Attributes:  model.Attributes(fieldType),
		})
	}
	return catalog
}
