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

package entry

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/magamawi/TiD-Forms/internal/form/model"
	"github.com/magamawi/TiD-Forms/internal/system/utils"
)

const (
	exportTimeLayout = "2006-01-02 15:04:05"
	exportDateLayout = "2006-01-02"
	utf8BOM          = "\xEF\xBB\xBF"
)

// Export holds everything needed to write the CSV export of a form.
type Export struct {
	Filename string
	Fields   []model.FieldInfo
	Entries  []Entry
}

// WriteCSV writes the export as CSV.
func (e *Export) WriteCSV(w io.Writer) error {
	return WriteCSV(w, e.Fields, e.Entries)
}

// WriteCSV writes the entries as a UTF-8 CSV document with a byte order mark. The columns are the
// submission date, the status, one column per field in schema order and the source IP address.
func WriteCSV(w io.Writer, fields []model.FieldInfo, entries []Entry) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write byte order mark: %w", err)
	}

	writer := csv.NewWriter(w)

	header := make([]string, 0, len(fields)+3)
	header = append(header, "Submission Date", "Status")
	for _, field := range fields {
		header = append(header, field.Label)
	}
	header = append(header, "IP Address")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for _, entry := range entries {
		row := make([]string, 0, len(header))
		row = append(row, entry.SubmittedAt.UTC().Format(exportTimeLayout), capitalize(string(entry.Status)))
		for _, field := range fields {
			value, ok := entry.Data[field.Name]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, value.String())
		}
		row = append(row, entry.SourceIP)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write entry row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// exportFilename returns the download name of the export of a form taken on the given day.
func exportFilename(formName string, day time.Time) string {
	slug := utils.Slugify(formName)
	if slug == "" {
		slug = "form"
	}
	return fmt.Sprintf("%s_entries_%s.csv", slug, day.UTC().Format(exportDateLayout))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
