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

// Package main is the entry point for starting the forms server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/magamawi/TiD-Forms/internal/system/cert"
	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/log"
	"github.com/magamawi/TiD-Forms/internal/system/utils"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	serverHome := getServerHome(logger)

	cfg := initConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	mux := http.NewServeMux()
	serviceManager, err := registerServices(mux, cfg)
	if err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, logger, cfg, mux, serverHome); err != nil {
		logger.Error("Server stopped with an error", log.Error(err))
	}

	if err := serviceManager.close(); err != nil {
		logger.Error("Failed to release server resources", log.Error(err))
	}
	logger.Info("Server stopped")
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	serverHome := ""
	serverHomeFlag := flag.String("serverHome", "", "Path to the forms server home directory")
	flag.Parse()

	if *serverHomeFlag != "" {
		logger.Info("Using serverHome from command line argument", log.String("serverHome", *serverHomeFlag))
		serverHome = *serverHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		serverHome = dir
	}

	return serverHome
}

// initConfigurations loads the dotenv files and the deployment configuration.
func initConfigurations(logger *log.Logger, serverHome string) *config.Config {
	if err := config.LoadEnvFiles(path.Join(serverHome, ".env")); err != nil {
		logger.Fatal("Failed to load environment files", log.Error(err))
	}

	configFilePath := path.Join(serverHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// runServer serves requests until the context is cancelled and then shuts the server down gracefully.
func runServer(ctx context.Context, logger *log.Logger, cfg *config.Config, mux *http.ServeMux,
	serverHome string) error {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	listener, err := createListener(cfg, serverAddr, serverHome)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if cfg.Server.HTTPOnly {
			logger.Info("TLS is not enabled, TiD Forms server started (HTTP)...", log.String("address", serverAddr))
		} else {
			logger.Info("TiD Forms server started (HTTPS)...", log.String("address", serverAddr))
		}
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve requests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down the server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// createListener opens the TCP listener, wrapped with TLS unless the server runs in HTTP only mode.
func createListener(cfg *config.Config, serverAddr, serverHome string) (net.Listener, error) {
	if cfg.Server.HTTPOnly {
		return net.Listen("tcp", serverAddr)
	}

	tlsConfig, err := cert.GetTLSConfig(cfg, serverHome)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS configuration: %w", err)
	}
	return tls.Listen("tcp", serverAddr, tlsConfig)
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	wrappedMux := log.AccessLogHandler(logger, mux, log.AccessLogOptions{
		ClientIP: func(r *http.Request) string {
			return utils.GetClientIP(r, cfg.Server.TrustProxyHeaders)
		},
		QuietPathPrefixes: []string{"/health/", "/metrics"},
	})

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
