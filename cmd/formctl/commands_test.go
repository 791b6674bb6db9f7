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

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magamawi/TiD-Forms/internal/entry"
	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/tests/mocks/entrymock"
	"github.com/magamawi/TiD-Forms/tests/mocks/formmock"
)

type stubTokenService struct {
	err error
}

func (s stubTokenService) IssueOperatorToken(subject string) (string, error) {
	return "token-for-" + subject, s.err
}

func (s stubTokenService) VerifyOperatorToken(token string) (string, error) {
	return "", errors.New("not supported")
}

func (s stubTokenService) IssueSubmissionToken(formID string) (string, error) {
	return "", errors.New("not supported")
}

func (s stubTokenService) VerifySubmissionToken(token, formID string) error {
	return errors.New("not supported")
}

func TestListFormsPagesThroughAllForms(t *testing.T) {
	formService := formmock.NewFormServiceInterfaceMock(t)
	formService.On("GetFormList", mock.Anything, 100, 0, form.FormStatusActive).Return(&form.FormListResponse{
		TotalResults: 3,
		Forms: []form.FormBasic{
			{ID: "form-1", Name: "Tom & Jerry", Status: form.FormStatusActive, EntryCount: 3},
			{ID: "form-2", Name: "Feedback", Status: form.FormStatusActive},
		},
	}, nil)
	formService.On("GetFormList", mock.Anything, 100, 2, form.FormStatusActive).Return(&form.FormListResponse{
		TotalResults: 3,
		Forms:        []form.FormBasic{{ID: "form-3", Name: "Survey", Status: form.FormStatusActive, EntryCount: 12}},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, listForms(context.Background(), &out, formService, form.FormStatusActive))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.HasSuffix(lines[0], "ENTRIES"))
	assert.True(t, strings.HasPrefix(lines[1], "form-1"))
	assert.Contains(t, lines[1], "Tom & Jerry")
	assert.True(t, strings.HasSuffix(lines[1], "3"))
	assert.True(t, strings.HasSuffix(lines[3], "12"))
}

func TestListFormsServiceError(t *testing.T) {
	formService := formmock.NewFormServiceInterfaceMock(t)
	formService.On("GetFormList", mock.Anything, 100, 0, form.FormStatus("archived")).
		Return(nil, &form.ErrorInvalidFormStatus)

	err := listForms(context.Background(), io.Discard, formService, form.FormStatus("archived"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), form.ErrorInvalidFormStatus.Code)
}

func TestExportToFile(t *testing.T) {
	entryService := entrymock.NewEntryServiceInterfaceMock(t)
	entryService.On("ExportEntries", mock.Anything, "form-1", mock.Anything).
		Run(func(args mock.Arguments) {
			_, _ = io.WriteString(args.Get(2).(io.Writer), "Submission Date,Status,IP Address\n")
		}).
		Return(&entry.Export{Filename: "contact_entries_2025-05-20.csv", Entries: []entry.Entry{{ID: "e-1"}}}, nil)

	outPath := filepath.Join(t.TempDir(), "entries.csv")
	var status bytes.Buffer
	require.NoError(t, exportToFile(context.Background(), &status, entryService, "form-1", outPath))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Submission Date,Status,IP Address\n", string(content))
	assert.Equal(t, "Exported 1 entries to "+outPath+"\n", status.String())
}

func TestExportToFileRemovesFileOnError(t *testing.T) {
	entryService := entrymock.NewEntryServiceInterfaceMock(t)
	entryService.On("ExportEntries", mock.Anything, "missing", mock.Anything).Return(nil, &entry.ErrorFormNotFound)

	outPath := filepath.Join(t.TempDir(), "entries.csv")
	err := exportToFile(context.Background(), io.Discard, entryService, "missing", outPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), entry.ErrorFormNotFound.Code)
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestIssueToken(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, issueToken(&out, stubTokenService{}, "admin"))
	assert.Equal(t, "token-for-admin\n", out.String())

	err := issueToken(io.Discard, stubTokenService{err: errors.New("subject must not be empty")}, "")
	assert.EqualError(t, err, "subject must not be empty")
}

func TestRootCommandTree(t *testing.T) {
	rootCmd := newRootCmd()

	for _, path := range [][]string{{"forms", "list"}, {"export"}, {"token", "issue"}} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("home"))
}
