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
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FieldType is the type of a form field.
type FieldType string

const (
	// FieldTypeText is a single line text input.
	FieldTypeText FieldType = "text"
	// FieldTypeEmail is an email address input.
	FieldTypeEmail FieldType = "email"
	// FieldTypeTextarea is a multi line text input.
	FieldTypeTextarea FieldType = "textarea"
	// FieldTypeSelect is a drop down with a single selection.
	FieldTypeSelect FieldType = "select"
	// FieldTypeRadio is a radio group with a single selection.
	FieldTypeRadio FieldType = "radio"
	// FieldTypeCheckbox is a checkbox group with any number of selections.
	FieldTypeCheckbox FieldType = "checkbox"
	// FieldTypeNumber is a numeric input.
	FieldTypeNumber FieldType = "number"
	// FieldTypeTel is a phone number input.
	FieldTypeTel FieldType = "tel"
	// FieldTypeURL is a web address input.
	FieldTypeURL FieldType = "url"
	// FieldTypeDate is a calendar date input.
	FieldTypeDate FieldType = "date"
	// FieldTypeGDPRConsent is a consent checkbox.
	FieldTypeGDPRConsent FieldType = "gdpr_consent"
)

// FieldTypes lists every supported field type.
var FieldTypes = []FieldType{
	FieldTypeText, FieldTypeEmail, FieldTypeTextarea, FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox,
	FieldTypeNumber, FieldTypeTel, FieldTypeURL, FieldTypeDate, FieldTypeGDPRConsent,
}

var (
	valueValidator = validator.New()
	phonePattern   = regexp.MustCompile(`^[0-9 +()\-]+$`)
	numberPattern  = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// dateLayouts are the layouts accepted for date values and date bounds, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// field is a compiled field descriptor. Each field type has its own implementation.
type field interface {
	descriptor() *base
	// sanitize normalizes a non-empty value.
	sanitize(v Value) Value
	// validate checks a sanitized value and returns the error message, or "" when the value is valid.
	validate(v Value) string
}

// base holds the attributes shared by all field types.
type base struct {
	Type        FieldType
	Name        string
	Label       string
	Required    bool
	Placeholder string
	Icon        string
	Description string
}

func (b *base) descriptor() *base {
	return b
}

// lengthBounds holds optional rune count bounds.
type lengthBounds struct {
	minLength *int
	maxLength *int
}

func (lb lengthBounds) check(label, s string) string {
	length := utf8.RuneCountInString(s)
	if lb.minLength != nil && length < *lb.minLength {
		return fmt.Sprintf("%s must be at least %d characters long.", label, *lb.minLength)
	}
	if lb.maxLength != nil && length > *lb.maxLength {
		return fmt.Sprintf("%s must be no more than %d characters long.", label, *lb.maxLength)
	}
	return ""
}

type textField struct {
	base
	lengthBounds
}

func (f *textField) sanitize(v Value) Value {
	return StringValue(sanitizeText(v.first()))
}

func (f *textField) validate(v Value) string {
	return f.check(f.Label, v.single)
}

type textareaField struct {
	base
	lengthBounds
}

func (f *textareaField) sanitize(v Value) Value {
	return StringValue(sanitizeTextarea(v.first()))
}

func (f *textareaField) validate(v Value) string {
	return f.check(f.Label, v.single)
}

type emailField struct {
	base
}

func (f *emailField) sanitize(v Value) Value {
	return StringValue(sanitizeEmail(v.first()))
}

func (f *emailField) validate(v Value) string {
	if v.single == "" || valueValidator.Var(v.single, "email") != nil {
		return fmt.Sprintf("%s must be a valid email address.", f.Label)
	}
	return ""
}

type urlField struct {
	base
}

func (f *urlField) sanitize(v Value) Value {
	return StringValue(sanitizeURL(v.first()))
}

func (f *urlField) validate(v Value) string {
	if valueValidator.Var(v.single, "url") != nil {
		return fmt.Sprintf("%s must be a valid URL.", f.Label)
	}
	parsed, err := url.Parse(v.single)
	if err != nil || parsed.Host == "" {
		return fmt.Sprintf("%s must be a valid URL.", f.Label)
	}
	return ""
}

type telField struct {
	base
	pattern *regexp.Regexp
}

func (f *telField) sanitize(v Value) Value {
	return StringValue(sanitizeText(v.first()))
}

func (f *telField) validate(v Value) string {
	if !phonePattern.MatchString(v.single) {
		return fmt.Sprintf("%s must be a valid phone number.", f.Label)
	}
	if f.pattern != nil && !f.pattern.MatchString(v.single) {
		return fmt.Sprintf("%s must be a valid phone number.", f.Label)
	}
	return ""
}

type numberField struct {
	base
	min *float64
	max *float64
}

// sanitize rewrites a parsable number in its canonical decimal form and leaves anything else trimmed.
func (f *numberField) sanitize(v Value) Value {
	s := strings.TrimSpace(v.first())
	if n, ok := parseNumber(s); ok {
		return StringValue(formatNumber(n))
	}
	return StringValue(s)
}

func (f *numberField) validate(v Value) string {
	n, ok := parseNumber(v.single)
	if !ok {
		return fmt.Sprintf("%s must be a valid number.", f.Label)
	}
	if f.min != nil && n < *f.min {
		return fmt.Sprintf("%s must be at least %s.", f.Label, formatNumber(*f.min))
	}
	if f.max != nil && n > *f.max {
		return fmt.Sprintf("%s must be no more than %s.", f.Label, formatNumber(*f.max))
	}
	return ""
}

type dateBound struct {
	raw string
	at  time.Time
}

type dateField struct {
	base
	min *dateBound
	max *dateBound
}

func (f *dateField) sanitize(v Value) Value {
	return StringValue(strings.TrimSpace(v.first()))
}

func (f *dateField) validate(v Value) string {
	at, ok := parseDate(v.single)
	if !ok {
		return fmt.Sprintf("%s must be a valid date.", f.Label)
	}
	if f.min != nil && at.Before(f.min.at) {
		return fmt.Sprintf("%s must be after %s.", f.Label, f.min.raw)
	}
	if f.max != nil && at.After(f.max.at) {
		return fmt.Sprintf("%s must be before %s.", f.Label, f.max.raw)
	}
	return ""
}

// Option is one choice of a select, radio or checkbox field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// choices holds the declared options in order with a lookup set.
type choices struct {
	options []Option
	allowed map[string]struct{}
}

func newChoices(options []Option) choices {
	allowed := make(map[string]struct{}, len(options))
	for _, option := range options {
		allowed[option.Value] = struct{}{}
	}
	return choices{options: options, allowed: allowed}
}

func (c choices) contains(value string) bool {
	_, ok := c.allowed[value]
	return ok
}

type selectField struct {
	base
	choices
}

func (f *selectField) sanitize(v Value) Value {
	return StringValue(strings.TrimSpace(v.first()))
}

func (f *selectField) validate(v Value) string {
	if !f.contains(v.single) {
		return fmt.Sprintf("Invalid selection for %s.", f.Label)
	}
	return ""
}

type radioField struct {
	base
	choices
}

func (f *radioField) sanitize(v Value) Value {
	return StringValue(strings.TrimSpace(v.first()))
}

func (f *radioField) validate(v Value) string {
	if !f.contains(v.single) {
		return fmt.Sprintf("Invalid selection for %s.", f.Label)
	}
	return ""
}

type checkboxField struct {
	base
	choices
}

// sanitize trims every selected value and keeps the submission order.
func (f *checkboxField) sanitize(v Value) Value {
	items := v.Items()
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return ListValue(items...)
}

func (f *checkboxField) validate(v Value) string {
	for _, item := range v.list {
		if !f.contains(item) {
			return fmt.Sprintf("Invalid selection for %s.", f.Label)
		}
	}
	return ""
}

type consentField struct {
	base
}

func (f *consentField) sanitize(v Value) Value {
	if isFalsy(v.first()) {
		return StringValue("0")
	}
	return StringValue("1")
}

func (f *consentField) validate(v Value) string {
	if f.Required && v.single != "1" {
		return fmt.Sprintf("You must agree to %s.", f.Label)
	}
	return ""
}

// parseNumber parses a plain decimal number.
func parseNumber(s string) (float64, bool) {
	if !numberPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// parseDate parses a date in any of the accepted layouts.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if at, err := time.Parse(layout, s); err == nil {
			return at, true
		}
	}
	return time.Time{}, false
}
