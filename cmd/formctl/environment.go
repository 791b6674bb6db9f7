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
	"fmt"
	"os"
	"path/filepath"

	"github.com/magamawi/TiD-Forms/internal/entry"
	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/database/provider"
	"github.com/magamawi/TiD-Forms/internal/system/jwt"
)

// environment holds the services a command runs against.
type environment struct {
	cfg          *config.Config
	dbProvider   provider.DBProviderInterface
	formService  form.FormServiceInterface
	entryService entry.EntryServiceInterface
}

// loadConfig reads the dotenv file and deployment configuration of the server home.
func loadConfig(home string) (*config.Config, error) {
	if home == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
		home = dir
	}

	if err := config.LoadEnvFiles(filepath.Join(home, ".env")); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}
	cfg, err := config.LoadConfig(filepath.Join(home, "repository", "conf", "deployment.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configurations: %w", err)
	}
	if err := config.InitializeServerRuntime(home, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize server runtime: %w", err)
	}
	return cfg, nil
}

// openEnvironment opens the database of the server home and creates the form and entry services.
func openEnvironment(home string) (*environment, error) {
	cfg, err := loadConfig(home)
	if err != nil {
		return nil, err
	}

	dbProvider := provider.GetDBProvider()
	reservedFields := []string{cfg.Submission.HoneypotField, cfg.Submission.TokenField}
	formService, err := form.NewFormService(dbProvider, reservedFields, cfg.Cache)
	if err != nil {
		_ = dbProvider.Close()
		return nil, err
	}

	return &environment{
		cfg:          cfg,
		dbProvider:   dbProvider,
		formService:  formService,
		entryService: entry.NewEntryService(dbProvider, formService),
	}, nil
}

func (e *environment) close() error {
	return e.dbProvider.Close()
}

// newTokenService creates the operator token service from the JWT configuration.
func newTokenService(cfg *config.Config) (jwt.TokenServiceInterface, error) {
	jwtService, err := jwt.NewJWTService(cfg.Auth.JWT)
	if err != nil {
		return nil, err
	}
	return jwt.NewTokenService(jwtService, cfg.Auth.JWT), nil
}
