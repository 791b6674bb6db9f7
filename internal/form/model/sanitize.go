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
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var stripTagsPolicy = bluemonday.StrictPolicy()

// stripTags removes markup and returns plain text.
func stripTags(s string) string {
	return html.UnescapeString(stripTagsPolicy.Sanitize(s))
}

// sanitizeText strips markup, turns control characters and line breaks into spaces, collapses
// whitespace and trims.
func sanitizeText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, stripTags(s))
	return strings.Join(strings.Fields(s), " ")
}

// sanitizeTextarea strips markup and drops control characters other than line breaks and tabs.
func sanitizeTextarea(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, stripTags(s))
	return strings.TrimSpace(s)
}

// sanitizeEmail drops whitespace and control characters.
func sanitizeEmail(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// sanitizeURL drops whitespace at the edges and control characters, and adds an http scheme when
// the value has none.
func sanitizeURL(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	if s != "" && !strings.Contains(s, "://") {
		s = "http://" + s
	}
	return s
}

// isFalsy reports whether a consent value means "not given".
func isFalsy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "off", "no":
		return true
	}
	return false
}
