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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/magamawi/TiD-Forms/internal/entry"
	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/system/constants"
	"github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"
	"github.com/magamawi/TiD-Forms/internal/system/jwt"
)

func newFormsListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List forms with their entry counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			env, err := openEnvironment(serverHome)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, env.close())
			}()

			return listForms(cmd.Context(), cmd.OutOrStdout(), env.formService, form.FormStatus(status))
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Only list forms with this status (active or inactive)")

	return cmd
}

func newExportCmd() *cobra.Command {
	var formID string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the entries of a form as CSV",
		Long: `Write every entry of a form as CSV, newest first. The file starts with a UTF-8 byte
order mark so spreadsheet applications detect the encoding.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			env, err := openEnvironment(serverHome)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, env.close())
			}()

			if outPath == "" {
				_, err = exportEntries(cmd.Context(), cmd.OutOrStdout(), env.entryService, formID)
				return err
			}
			return exportToFile(cmd.Context(), cmd.ErrOrStderr(), env.entryService, formID, outPath)
		},
	}
	cmd.Flags().StringVar(&formID, "form", "", "ID of the form to export")
	cmd.Flags().StringVar(&outPath, "out", "", "File to write the CSV to (default: stdout)")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}

func newTokenIssueCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue an operator bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(serverHome)
			if err != nil {
				return err
			}
			tokenService, err := newTokenService(cfg)
			if err != nil {
				return err
			}
			return issueToken(cmd.OutOrStdout(), tokenService, subject)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Operator the token is issued to")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

// listForms prints every form page by page.
func listForms(ctx context.Context, out io.Writer, formService form.FormServiceInterface,
	status form.FormStatus) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tENTRIES"); err != nil {
		return err
	}

	for offset := 0; ; {
		page, svcErr := formService.GetFormList(ctx, constants.MaxPageSize, offset, status)
		if svcErr != nil {
			return serviceErr(svcErr)
		}
		for _, f := range page.Forms {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", f.ID, f.Name, f.Status, f.EntryCount); err != nil {
				return err
			}
		}

		offset += len(page.Forms)
		if len(page.Forms) == 0 || offset >= page.TotalResults {
			break
		}
	}

	return tw.Flush()
}

// exportEntries writes the CSV export of the form.
func exportEntries(ctx context.Context, out io.Writer, entryService entry.EntryServiceInterface,
	formID string) (*entry.Export, error) {
	export, svcErr := entryService.ExportEntries(ctx, formID, out)
	if svcErr != nil {
		return nil, serviceErr(svcErr)
	}
	return export, nil
}

// exportToFile writes the CSV export to a file, removing the file again when the export fails.
func exportToFile(ctx context.Context, status io.Writer, entryService entry.EntryServiceInterface, formID,
	outPath string) error {
	file, err := os.Create(outPath)
	if err != nil {
		return err
	}

	export, err := exportEntries(ctx, file, entryService, formID)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(outPath)
		return err
	}

	_, err = fmt.Fprintf(status, "Exported %d entries to %s\n", len(export.Entries), outPath)
	return err
}

// issueToken prints an operator token for the subject.
func issueToken(out io.Writer, tokenService jwt.TokenServiceInterface, subject string) error {
	token, err := tokenService.IssueOperatorToken(subject)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}

func serviceErr(svcErr *serviceerror.ServiceError) error {
	return fmt.Errorf("%s (%s): %s", svcErr.Error, svcErr.Code, svcErr.ErrorDescription)
}
