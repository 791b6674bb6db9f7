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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/constants"
	"github.com/magamawi/TiD-Forms/internal/system/database/client"
	"github.com/magamawi/TiD-Forms/internal/system/database/model"
	"github.com/magamawi/TiD-Forms/internal/system/log"
)

const (
	pingTimeout             = 5 * time.Second
	sqliteForeignKeysPragma = "_pragma=foreign_keys(1)"
)

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
	filePath   string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	formsClient client.DBClientInterface
	formsMutex  sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	switch dbName {
	case constants.FormsDBName:
		formsDBConfig := config.GetServerRuntime().Config.Database.Forms
		return d.getOrInitClient(&d.formsClient, &d.formsMutex, formsDBConfig)
	default:
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// Close closes every database client opened by the provider.
func (d *DBProvider) Close() error {
	d.formsMutex.Lock()
	defer d.formsMutex.Unlock()

	if d.formsClient == nil {
		return nil
	}
	if err := d.formsClient.Close(); err != nil {
		return fmt.Errorf("failed to close %s client: %w", constants.FormsDBName, err)
	}
	d.formsClient = nil
	log.GetLogger().Debug("Database connections closed successfully")
	return nil
}

// getOrInitClient gets or initializes a DB client with locking.
func (d *DBProvider) getOrInitClient(
	clientPtr *client.DBClientInterface,
	mutex *sync.RWMutex,
	dataSource config.DataSource,
) (client.DBClientInterface, error) {
	mutex.RLock()
	if *clientPtr != nil {
		dbClient := *clientPtr
		mutex.RUnlock()
		return dbClient, nil
	}
	mutex.RUnlock()

	mutex.Lock()
	defer mutex.Unlock()

	if *clientPtr != nil {
		return *clientPtr, nil
	}

	if err := d.initializeClient(clientPtr, dataSource); err != nil {
		return nil, err
	}

	return *clientPtr, nil
}

// initializeClient initializes a database client and assigns it to the provided pointer.
func (d *DBProvider) initializeClient(clientPtr *client.DBClientInterface, dataSource config.DataSource) error {
	dbConfig, err := getDBConfig(dataSource, config.GetServerRuntime().ServerHome)
	if err != nil {
		return err
	}
	dbName := dataSource.Name

	if dbConfig.filePath != "" {
		if err := os.MkdirAll(filepath.Dir(dbConfig.filePath), 0o750); err != nil {
			return fmt.Errorf("failed to create directory for database %s: %w", dbName, err)
		}
	}

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	// Configure connection pool using values from configuration
	db.SetMaxOpenConns(dataSource.MaxOpenConns)
	db.SetMaxIdleConns(dataSource.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	*clientPtr = client.NewDBClient(model.NewDB(db), dbConfig.driverName)
	return nil
}

// getDBConfig returns the database configuration based on the provided data source.
func getDBConfig(dataSource config.DataSource, serverHome string) (dbConfig, error) {
	var cfg dbConfig

	switch dataSource.Type {
	case model.DBTypePostgres:
		cfg.driverName = model.DBTypePostgres
		cfg.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, dataSource.SSLMode)
	case model.DBTypeSQLite:
		cfg.driverName = model.DBTypeSQLite
		// Entries cascade with their form, which SQLite only honours on connections with foreign keys enabled.
		options := "?" + sqliteForeignKeysPragma
		if dataSource.Options != "" {
			options += "&" + strings.TrimPrefix(dataSource.Options, "?")
		}
		dbPath := dataSource.Path
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(serverHome, dbPath)
		}
		cfg.filePath = dbPath
		cfg.dsn = fmt.Sprintf("file:%s%s", dbPath, options)
	default:
		return cfg, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}

	return cfg, nil
}
