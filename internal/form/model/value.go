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
	"fmt"
	"strings"
)

// Value is a submitted or sanitized field value. It holds either a single string or an ordered
// list of strings.
type Value struct {
	single string
	list   []string
	isList bool
}

// Values maps field names to raw submitted values.
type Values map[string]Value

// Data maps field names to sanitized values.
type Data map[string]Value

// StringValue creates a single string value.
func StringValue(s string) Value {
	return Value{single: s}
}

// ListValue creates a list value. The items are copied.
func ListValue(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{list: list, isList: true}
}

// IsList reports whether the value is a list.
func (v Value) IsList() bool {
	return v.isList
}

// String returns the single string, or the list items joined with ", ".
func (v Value) String() string {
	if v.isList {
		return strings.Join(v.list, ", ")
	}
	return v.single
}

// Items returns a copy of the list items. A single value yields a one element list unless it is empty.
func (v Value) Items() []string {
	if v.isList {
		items := make([]string, len(v.list))
		copy(items, v.list)
		return items
	}
	if v.single == "" {
		return []string{}
	}
	return []string{v.single}
}

// isEmpty reports whether the value is blank: a string that is empty after trimming, or an empty list.
func (v Value) isEmpty() bool {
	if v.isList {
		return len(v.list) == 0
	}
	return strings.TrimSpace(v.single) == ""
}

// first reduces the value to a single string.
func (v Value) first() string {
	if v.isList {
		if len(v.list) == 0 {
			return ""
		}
		return v.list[0]
	}
	return v.single
}

// MarshalJSON encodes a single value as a JSON string and a list as a JSON array. HTML characters are
// left to the enclosing encoder to escape.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		if v.list == nil {
			return []byte("[]"), nil
		}
		return marshalUnescaped(v.list)
	}
	return marshalUnescaped(v.single)
}

func marshalUnescaped(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes a JSON string, array, boolean, number or null into a value. Booleans become
// "1" or "0", numbers keep their literal text and null becomes an empty string.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		list := make([]string, 0, len(raw))
		for _, item := range raw {
			s, err := scalarToString(item)
			if err != nil {
				return err
			}
			list = append(list, s)
		}
		*v = Value{list: list, isList: true}
		return nil
	}

	s, err := scalarToString(trimmed)
	if err != nil {
		return err
	}
	*v = Value{single: s}
	return nil
}

// scalarToString coerces a JSON scalar to its string form.
func scalarToString(raw json.RawMessage) (string, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var decoded interface{}
	if err := decoder.Decode(&decoded); err != nil {
		return "", err
	}

	switch typed := decoded.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case bool:
		if typed {
			return "1", nil
		}
		return "0", nil
	case json.Number:
		return typed.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", decoded)
	}
}
