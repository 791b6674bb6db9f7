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

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// ErrInvalidSchema is wrapped by every schema compilation error.
var ErrInvalidSchema = errors.New("invalid form schema")

// SchemaError describes why a field descriptor was rejected.
type SchemaError struct {
	Index  int
	Name   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("field %d (%s): %s", e.Index, e.Name, e.Reason)
	}
	return fmt.Sprintf("field %d: %s", e.Index, e.Reason)
}

// Unwrap allows errors.Is checks against ErrInvalidSchema.
func (e *SchemaError) Unwrap() error {
	return ErrInvalidSchema
}

var commonAttributes = []string{"type", "name", "label", "required", "placeholder", "icon", "description"}

// typeAttributes lists the extra attributes allowed for each field type.
var typeAttributes = map[FieldType][]string{
	FieldTypeText:        {"min_length", "max_length"},
	FieldTypeTextarea:    {"rows", "min_length", "max_length"},
	FieldTypeEmail:       {},
	FieldTypeURL:         {},
	FieldTypeTel:         {"pattern"},
	FieldTypeNumber:      {"min", "max", "step"},
	FieldTypeDate:        {"min", "max"},
	FieldTypeSelect:      {"options"},
	FieldTypeRadio:       {"options"},
	FieldTypeCheckbox:    {"options"},
	FieldTypeGDPRConsent: {},
}

// CompileSchema parses an ordered list of field descriptors and compiles it for validation.
func CompileSchema(raw json.RawMessage) (*Schema, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: fields must be a JSON array", ErrInvalidSchema)
	}

	var descriptors []json.RawMessage
	if err := json.Unmarshal(trimmed, &descriptors); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	schema := &Schema{fields: make([]field, 0, len(descriptors))}
	names := make(map[string]struct{}, len(descriptors))
	for i, descriptor := range descriptors {
		f, err := compileField(i, descriptor)
		if err != nil {
			return nil, err
		}
		name := f.descriptor().Name
		if _, exists := names[name]; exists {
			return nil, &SchemaError{Index: i, Name: name, Reason: "duplicate field name"}
		}
		names[name] = struct{}{}
		schema.fields = append(schema.fields, f)
	}

	return schema, nil
}

// attributes is a decoded field descriptor.
type attributes struct {
	index int
	name  string
	raw   map[string]json.RawMessage
}

func (a *attributes) fail(format string, args ...interface{}) error {
	return &SchemaError{Index: a.index, Name: a.name, Reason: fmt.Sprintf(format, args...)}
}

func (a *attributes) has(key string) bool {
	_, ok := a.raw[key]
	return ok
}

func (a *attributes) stringAttr(key string) (string, error) {
	value, ok := a.raw[key]
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", a.fail("%s must be a string", key)
	}
	return s, nil
}

func (a *attributes) boolAttr(key string) (bool, error) {
	value, ok := a.raw[key]
	if !ok {
		return false, nil
	}
	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		return false, a.fail("%s must be a boolean", key)
	}
	return b, nil
}

func (a *attributes) intAttr(key string) (*int, error) {
	value, ok := a.raw[key]
	if !ok {
		return nil, nil
	}
	var n float64
	if err := json.Unmarshal(value, &n); err != nil || n < 0 || n != math.Trunc(n) || n > math.MaxInt32 {
		return nil, a.fail("%s must be a non-negative integer", key)
	}
	result := int(n)
	return &result, nil
}

func (a *attributes) numberAttr(key string) (*float64, error) {
	value, ok := a.raw[key]
	if !ok {
		return nil, nil
	}
	var n float64
	if err := json.Unmarshal(value, &n); err == nil {
		return &n, nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		if parsed, ok := parseNumber(strings.TrimSpace(s)); ok {
			return &parsed, nil
		}
	}
	return nil, a.fail("%s must be a number", key)
}

func (a *attributes) dateAttr(key string) (*dateBound, error) {
	if !a.has(key) {
		return nil, nil
	}
	s, err := a.stringAttr(key)
	if err != nil {
		return nil, err
	}
	at, ok := parseDate(strings.TrimSpace(s))
	if !ok {
		return nil, a.fail("%s must be a date", key)
	}
	return &dateBound{raw: strings.TrimSpace(s), at: at}, nil
}

// optionsAttr reads options declared either as a JSON object in declaration order or as an array of
// value and label pairs.
func (a *attributes) optionsAttr() ([]Option, error) {
	value, ok := a.raw["options"]
	if !ok {
		return nil, a.fail("options are required")
	}

	trimmed := bytes.TrimSpace(value)
	var options []Option
	switch {
	case len(trimmed) > 0 && trimmed[0] == '{':
		parsed, err := decodeOrderedOptions(trimmed)
		if err != nil {
			return nil, a.fail("invalid options: %v", err)
		}
		options = parsed
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &options); err != nil {
			return nil, a.fail("invalid options: %v", err)
		}
	default:
		return nil, a.fail("options must be an object or an array")
	}

	if len(options) == 0 {
		return nil, a.fail("options must not be empty")
	}
	seen := make(map[string]struct{}, len(options))
	for _, option := range options {
		if option.Value == "" {
			return nil, a.fail("option values must not be empty")
		}
		if _, exists := seen[option.Value]; exists {
			return nil, a.fail("duplicate option %q", option.Value)
		}
		seen[option.Value] = struct{}{}
	}
	return options, nil
}

// decodeOrderedOptions decodes a JSON object of value to label pairs keeping the key order.
func decodeOrderedOptions(data []byte) ([]Option, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	options := make([]Option, 0)
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, errors.New("option value must be a string")
		}
		var label string
		if err := decoder.Decode(&label); err != nil {
			return nil, fmt.Errorf("label of option %q must be a string", key)
		}
		options = append(options, Option{Value: key, Label: label})
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return options, nil
}

// compileField compiles a single field descriptor into its typed variant.
func compileField(index int, raw json.RawMessage) (field, error) {
	attrs := &attributes{index: index}
	if err := json.Unmarshal(raw, &attrs.raw); err != nil || attrs.raw == nil {
		return nil, attrs.fail("field must be a JSON object")
	}

	name, err := attrs.stringAttr("name")
	if err != nil {
		return nil, err
	}
	attrs.name = strings.TrimSpace(name)
	if attrs.name == "" {
		return nil, attrs.fail("name is required")
	}

	typeName, err := attrs.stringAttr("type")
	if err != nil {
		return nil, err
	}
	fieldType := FieldType(typeName)
	allowed, known := typeAttributes[fieldType]
	if !known {
		return nil, attrs.fail("unknown field type %q", typeName)
	}
	for key := range attrs.raw {
		if !contains(commonAttributes, key) && !contains(allowed, key) {
			return nil, attrs.fail("attribute %q is not allowed for %s fields", key, fieldType)
		}
	}

	b, err := compileBase(attrs, fieldType)
	if err != nil {
		return nil, err
	}

	switch fieldType {
	case FieldTypeText:
		bounds, err := compileLengthBounds(attrs)
		if err != nil {
			return nil, err
		}
		return &textField{base: b, lengthBounds: bounds}, nil
	case FieldTypeTextarea:
		bounds, err := compileLengthBounds(attrs)
		if err != nil {
			return nil, err
		}
		rows, err := attrs.intAttr("rows")
		if err != nil {
			return nil, err
		}
		if rows != nil && *rows == 0 {
			return nil, attrs.fail("rows must be positive")
		}
		return &textareaField{base: b, lengthBounds: bounds}, nil
	case FieldTypeEmail:
		return &emailField{base: b}, nil
	case FieldTypeURL:
		return &urlField{base: b}, nil
	case FieldTypeTel:
		pattern, err := attrs.stringAttr("pattern")
		if err != nil {
			return nil, err
		}
		f := &telField{base: b}
		if pattern != "" {
			compiled, err := regexp.Compile("^(?:" + pattern + ")$")
			if err != nil {
				return nil, attrs.fail("invalid pattern: %v", err)
			}
			f.pattern = compiled
		}
		return f, nil
	case FieldTypeNumber:
		return compileNumber(attrs, b)
	case FieldTypeDate:
		return compileDate(attrs, b)
	case FieldTypeSelect:
		options, err := attrs.optionsAttr()
		if err != nil {
			return nil, err
		}
		return &selectField{base: b, choices: newChoices(options)}, nil
	case FieldTypeRadio:
		options, err := attrs.optionsAttr()
		if err != nil {
			return nil, err
		}
		return &radioField{base: b, choices: newChoices(options)}, nil
	case FieldTypeCheckbox:
		options, err := attrs.optionsAttr()
		if err != nil {
			return nil, err
		}
		return &checkboxField{base: b, choices: newChoices(options)}, nil
	case FieldTypeGDPRConsent:
		return &consentField{base: b}, nil
	default:
		return nil, attrs.fail("unknown field type %q", typeName)
	}
}

func compileBase(attrs *attributes, fieldType FieldType) (base, error) {
	b := base{Type: fieldType, Name: attrs.name}

	label, err := attrs.stringAttr("label")
	if err != nil {
		return base{}, err
	}
	b.Label = strings.TrimSpace(label)
	if b.Label == "" {
		return base{}, attrs.fail("label is required")
	}

	if b.Required, err = attrs.boolAttr("required"); err != nil {
		return base{}, err
	}
	if b.Placeholder, err = attrs.stringAttr("placeholder"); err != nil {
		return base{}, err
	}
	if b.Icon, err = attrs.stringAttr("icon"); err != nil {
		return base{}, err
	}
	if b.Description, err = attrs.stringAttr("description"); err != nil {
		return base{}, err
	}
	return b, nil
}

func compileLengthBounds(attrs *attributes) (lengthBounds, error) {
	minLength, err := attrs.intAttr("min_length")
	if err != nil {
		return lengthBounds{}, err
	}
	maxLength, err := attrs.intAttr("max_length")
	if err != nil {
		return lengthBounds{}, err
	}
	if minLength != nil && maxLength != nil && *minLength > *maxLength {
		return lengthBounds{}, attrs.fail("min_length must not be greater than max_length")
	}
	return lengthBounds{minLength: minLength, maxLength: maxLength}, nil
}

func compileNumber(attrs *attributes, b base) (field, error) {
	minValue, err := attrs.numberAttr("min")
	if err != nil {
		return nil, err
	}
	maxValue, err := attrs.numberAttr("max")
	if err != nil {
		return nil, err
	}
	if minValue != nil && maxValue != nil && *minValue > *maxValue {
		return nil, attrs.fail("min must not be greater than max")
	}
	step, err := attrs.numberAttr("step")
	if err != nil {
		return nil, err
	}
	if step != nil && *step <= 0 {
		return nil, attrs.fail("step must be positive")
	}
	return &numberField{base: b, min: minValue, max: maxValue}, nil
}

func compileDate(attrs *attributes, b base) (field, error) {
	minDate, err := attrs.dateAttr("min")
	if err != nil {
		return nil, err
	}
	maxDate, err := attrs.dateAttr("max")
	if err != nil {
		return nil, err
	}
	if minDate != nil && maxDate != nil && minDate.at.After(maxDate.at) {
		return nil, attrs.fail("min must not be after max")
	}
	return &dateField{base: b, min: minDate, max: maxDate}, nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// Attributes returns the descriptor attributes accepted for the field type, common attributes first.
// It returns nil for an unknown type.
func Attributes(fieldType FieldType) []string {
	extra, ok := typeAttributes[fieldType]
	if !ok {
		return nil
	}
	attrs := make([]string, 0, len(commonAttributes)+len(extra))
	attrs = append(attrs, commonAttributes...)
	return append(attrs, extra...)
}
