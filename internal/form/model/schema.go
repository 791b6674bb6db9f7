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

// Schema is a compiled, ordered list of field descriptors.
type Schema struct {
	fields []field
}

// FieldInfo describes a compiled field.
type FieldInfo struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
}

// Result is the outcome of validating a submission against a schema.
type Result struct {
	Valid  bool
	Errors map[string]string
	Data   Data
}

// Len returns the number of fields in the schema.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Fields returns the name, label and type of every field in schema order.
func (s *Schema) Fields() []FieldInfo {
	infos := make([]FieldInfo, 0, len(s.fields))
	for _, f := range s.fields {
		d := f.descriptor()
		infos = append(infos, FieldInfo{Name: d.Name, Label: d.Label, Type: d.Type})
	}
	return infos
}

// Validate sanitizes and validates the submitted values against the schema. Values for names that are not
// part of the schema are ignored. The same input always produces the same result.
func (s *Schema) Validate(values Values) Result {
	result := Result{
		Errors: make(map[string]string),
		Data:   make(Data, len(s.fields)),
	}

	for _, f := range s.fields {
		d := f.descriptor()
		value := normalize(d.Type, values[d.Name])

		if value.isEmpty() {
			if d.Required {
				result.Errors[d.Name] = requiredMessage(d.Label)
				continue
			}
			result.Data[d.Name] = emptyValue(d.Type)
			continue
		}

		sanitized := f.sanitize(value)
		if d.Required && sanitized.isEmpty() {
			result.Errors[d.Name] = requiredMessage(d.Label)
			continue
		}
		if message := f.validate(sanitized); message != "" {
			result.Errors[d.Name] = message
			continue
		}
		result.Data[d.Name] = sanitized
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// normalize reduces a list to its first element for single value fields and lifts a single string
// into a list for checkbox fields.
func normalize(fieldType FieldType, v Value) Value {
	if fieldType == FieldTypeCheckbox {
		if v.isList {
			return v
		}
		if v.isEmpty() {
			return ListValue()
		}
		return ListValue(v.single)
	}
	return StringValue(v.first())
}

func emptyValue(fieldType FieldType) Value {
	if fieldType == FieldTypeCheckbox {
		return ListValue()
	}
	return StringValue("")
}

func requiredMessage(label string) string {
	return label + " is required."
}
