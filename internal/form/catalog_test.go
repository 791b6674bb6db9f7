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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magamawi/TiD-Forms/internal/form/model"
)

func TestLoadTemplates(t *testing.T) {
	templates, err := loadTemplates()
	require.NoError(t, err)
	require.Len(t, templates, len(templateOrder))

	for _, id := range templateOrder {
		template, ok := templates[id]
		require.True(t, ok, "template %s must be embedded", id)
		assert.NotEmpty(t, template.Name)

		schema, err := model.CompileSchema(template.Fields)
		require.NoError(t, err)
		if id == TemplateBlank {
			assert.Equal(t, 0, schema.Len())
		} else {
			assert.Positive(t, schema.Len(), "template %s must define fields", id)
		}

		if template.Settings != nil {
			_, err := validateSettings(*template.Settings)
			assert.NoError(t, err, "template %s must carry valid settings", id)
		}
	}
}

func TestSortedTemplatesAppendsUnlistedTemplates(t *testing.T) {
	templates := map[string]Template{
		"survey":     {ID: "survey"},
		"contact":    {ID: "contact"},
		"blank":      {ID: "blank"},
		"appendix":   {ID: "appendix"},
		"newsletter": {ID: "newsletter"},
	}

	sorted := sortedTemplates(templates)

	ids := make([]string, 0, len(sorted))
	for _, template := range sorted {
		ids = append(ids, template.ID)
	}
	assert.Equal(t, []string{"blank", "newsletter", "contact", "appendix", "survey"}, ids)
}

func TestFieldTypeCatalog(t *testing.T) {
	catalog := fieldTypeCatalog()
	require.Len(t, catalog, len(model.FieldTypes))

	for i, info := range catalog {
		assert.Equal(t, model.FieldTypes[i], info.Type)
		assert.NotEmpty(t, info.Label)
		assert.NotEmpty(t, info.Icon)
		assert.Contains(t, info.Attributes, "name")
	}
}
