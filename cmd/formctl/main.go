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

// Package main is the operator command line tool of the forms server.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/magamawi/TiD-Forms/internal/system/constants"
)

// serverHome is the --home flag shared by every command.
var serverHome string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the formctl command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formctl",
		Short: "Operate a TiD Forms server",
		Long: `formctl reads the deployment configuration of a TiD Forms server home and works
directly against its database.

Available commands:
  forms  - List forms with their entry counts
  export - Write the entries of a form as CSV
  token  - Issue operator bearer tokens`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Keep informational server logs out of command output such as CSV written to stdout.
			if _, ok := os.LookupEnv(constants.LogLevelEnvironmentVariable); !ok {
				return os.Setenv(constants.LogLevelEnvironmentVariable, "error")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&serverHome, "home", "", "Server home directory (default: current)")

	formsCmd := &cobra.Command{
		Use:   "forms",
		Short: "Manage forms",
	}
	formsCmd.AddCommand(newFormsListCmd())

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Manage operator tokens",
	}
	tokenCmd.AddCommand(newTokenIssueCmd())

	rootCmd.AddCommand(formsCmd)
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(tokenCmd)

	return rootCmd
}
