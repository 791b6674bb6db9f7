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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"

	"github.com/magamawi/TiD-Forms/internal/system/constants"
	"github.com/magamawi/TiD-Forms/internal/system/log"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname          string `yaml:"hostname"`
	Port              int    `yaml:"port"`
	HTTPOnly          bool   `yaml:"http_only"`
	TrustProxyHeaders bool   `yaml:"trust_proxy_headers"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the configuration details for cross origin requests.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Forms DataSource `yaml:"forms"`
}

// JWTConfig holds the JWT configuration details.
type JWTConfig struct {
	Issuer                   string `yaml:"issuer"`
	Secret                   string `yaml:"secret"`
	ValidityPeriod           int64  `yaml:"validity_period"`
	SubmissionValidityPeriod int64  `yaml:"submission_validity_period"`
}

// AuthConfig holds the operator authentication configuration details.
type AuthConfig struct {
	JWT JWTConfig `yaml:"jwt"`
}

// SubmissionTokenConfig holds the configuration of the submission token check.
type SubmissionTokenConfig struct {
	Enabled bool `yaml:"enabled"`
}

// RateLimitConfig holds the configuration of the per source submission limiter.
type RateLimitConfig struct {
	Enabled         bool   `yaml:"enabled"`
	MaxAttempts     int64  `yaml:"max_attempts"`
	Window          int64  `yaml:"window"`
	Store           string `yaml:"store"`
	CleanupInterval int64  `yaml:"cleanup_interval"`
}

// SubmissionConfig holds the configuration of the public submission pipeline.
type SubmissionConfig struct {
	HoneypotField string                `yaml:"honeypot_field"`
	TokenField    string                `yaml:"token_field"`
	Token         SubmissionTokenConfig `yaml:"token"`
	RateLimit     RateLimitConfig       `yaml:"rate_limit"`
}

// RedisConfig holds the connection details of the Redis server.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig holds the connection details of the Kafka cluster.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// EventsConfig holds the configuration of the entry event publisher.
type EventsConfig struct {
	Enabled bool        `yaml:"enabled"`
	Kafka   KafkaConfig `yaml:"kafka"`
}

// MetricsConfig holds the configuration of the metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// CacheConfig holds the configuration of the compiled form cache.
type CacheConfig struct {
	Enabled bool  `yaml:"enabled"`
	Size    int   `yaml:"size"`
	TTL     int64 `yaml:"ttl"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Security   SecurityConfig   `yaml:"security"`
	CORS       CORSConfig       `yaml:"cors"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Submission SubmissionConfig `yaml:"submission"`
	Redis      RedisConfig      `yaml:"redis"`
	Events     EventsConfig     `yaml:"events"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Cache      CacheConfig      `yaml:"cache"`
}

// DefaultConfig returns the configuration used for every knob the deployment file leaves unset.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Hostname: "localhost",
			Port:     8090,
		},
		Database: DatabaseConfig{
			Forms: DataSource{
				Type:            "sqlite",
				Path:            "repository/database/forms.db",
				Options:         "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)",
				MaxOpenConns:    10,
				MaxIdleConns:    5,
				ConnMaxLifetime: 3600,
			},
		},
		Auth: AuthConfig{
			JWT: JWTConfig{
				Issuer:                   "tidforms",
				ValidityPeriod:           3600,
				SubmissionValidityPeriod: 7200,
			},
		},
		Submission: SubmissionConfig{
			HoneypotField: "honeypot",
			TokenField:    "submission_token",
			Token:         SubmissionTokenConfig{Enabled: true},
			RateLimit: RateLimitConfig{
				Enabled:         true,
				MaxAttempts:     5,
				Window:          3600,
				Store:           "inmemory",
				CleanupInterval: 60,
			},
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		Events: EventsConfig{
			Kafka: KafkaConfig{
				Topic: "tidforms.entries",
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			Size:    1000,
			TTL:     300,
		},
	}
}

// LoadConfig loads the configurations from the specified YAML file on top of the defaults
// and applies the environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	applyEnvironmentOverrides(&cfg)
	return &cfg, nil
}

// LoadEnvFiles loads the given dotenv files into the process environment. Missing files are skipped
// and variables that are already set are left untouched.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return err
		}
	}
	return nil
}

// applyEnvironmentOverrides replaces secrets and endpoints with the values of the TIDFORMS_* variables.
func applyEnvironmentOverrides(cfg *Config) {
	if v, ok := lookupEnv("JWT_SECRET"); ok {
		cfg.Auth.JWT.Secret = v
	}
	if v, ok := lookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Forms.Password = v
	}
	if v, ok := lookupEnv("REDIS_ADDRESS"); ok {
		cfg.Redis.Address = v
	}
	if v, ok := lookupEnv("REDIS_PASSWORD"); ok {
		cfg.Redis.Password = v
	}
	if v, ok := lookupEnv("KAFKA_BROKERS"); ok {
		brokers := make([]string, 0)
		for _, broker := range strings.Split(v, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				brokers = append(brokers, broker)
			}
		}
		cfg.Events.Kafka.Brokers = brokers
	}
}

func lookupEnv(name string) (string, bool) {
	v, ok := os.LookupEnv(constants.EnvironmentVariablePrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
