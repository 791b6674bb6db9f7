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

package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/magamawi/TiD-Forms/internal/system/constants"
)

var (
	// ErrInvalidLimit is returned when the limit query parameter is not an integer within range.
	ErrInvalidLimit = errors.New("invalid limit parameter")
	// ErrInvalidOffset is returned when the offset query parameter is not a non-negative integer.
	ErrInvalidOffset = errors.New("invalid offset parameter")
)

// Link represents a pagination link.
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

// ParsePaginationParams parses the limit and offset query parameters. A missing limit falls back
// to the default page size.
func ParsePaginationParams(query url.Values) (int, int, error) {
	limit := constants.DefaultPageSize
	offset := 0

	if limitStr := query.Get("limit"); limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, ErrInvalidLimit
		}
		limit = parsedLimit
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		parsedOffset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return 0, 0, ErrInvalidOffset
		}
		offset = parsedOffset
	}

	return limit, offset, ValidatePaginationParams(limit, offset)
}

// ValidatePaginationParams checks that limit is within 1 and the maximum page size and that offset
// is not negative.
func ValidatePaginationParams(limit, offset int) error {
	if limit < 1 || limit > constants.MaxPageSize {
		return ErrInvalidLimit
	}
	if offset < 0 {
		return ErrInvalidOffset
	}
	return nil
}

// BuildPaginationLinks builds the first, prev, next and last links of a paginated listing.
// extraQuery is appended to every link and must already be encoded.
func BuildPaginationLinks(path string, limit, offset, totalResults int, extraQuery string) []Link {
	links := make([]Link, 0)
	if limit < 1 {
		return links
	}

	suffix := ""
	if extraQuery != "" {
		suffix = "&" + extraQuery
	}

	if offset > 0 {
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=0&limit=%d%s", path, limit, suffix),
			Rel:  "first",
		})

		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=%d&limit=%d%s", path, prevOffset, limit, suffix),
			Rel:  "prev",
		})
	}

	if offset+limit < totalResults {
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=%d&limit=%d%s", path, offset+limit, limit, suffix),
			Rel:  "next",
		})
	}

	if totalResults > 0 {
		lastPageOffset := ((totalResults - 1) / limit) * limit
		if offset < lastPageOffset {
			links = append(links, Link{
				Href: fmt.Sprintf("%s?offset=%d&limit=%d%s", path, lastPageOffset, limit, suffix),
				Rel:  "last",
			})
		}
	}

	return links
}
