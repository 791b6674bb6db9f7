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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testDeploymentYAML = `
server:
  hostname: "forms.example.com"
  port: 9443
  trust_proxy_headers: true
security:
  cert_file: "/path/to/cert.pem"
  key_file: "/path/to/key.pem"
cors:
  allowed_origins:
    - "https://www.example.com"
database:
  forms:
    type: "postgres"
    hostname: "db"
    port: 5432
    name: "formsdb"
    username: "forms"
    password: "from-file"
    sslmode: "disable"
auth:
  jwt:
    issuer: "forms-test"
    secret: "file-secret"
submission:
  honeypot_field: "website"
  rate_limit:
    max_attempts: 3
    store: "redis"
events:
  enabled: true
  kafka:
    brokers: ["kafka:9092"]
`

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *ConfigTestSuite) writeFile(name, content string) string {
	path := filepath.Join(suite.dir, name)
	require.NoError(suite.T(), os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	config, err := LoadConfig(suite.writeFile("deployment.yaml", testDeploymentYAML))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	assert.Equal(suite.T(), "forms.example.com", config.Server.Hostname)
	assert.Equal(suite.T(), 9443, config.Server.Port)
	assert.True(suite.T(), config.Server.TrustProxyHeaders)
	assert.Equal(suite.T(), "/path/to/cert.pem", config.Security.CertFile)
	assert.Equal(suite.T(), []string{"https://www.example.com"}, config.CORS.AllowedOrigins)

	assert.Equal(suite.T(), "postgres", config.Database.Forms.Type)
	assert.Equal(suite.T(), "formsdb", config.Database.Forms.Name)
	assert.Equal(suite.T(), "from-file", config.Database.Forms.Password)

	assert.Equal(suite.T(), "forms-test", config.Auth.JWT.Issuer)
	assert.Equal(suite.T(), "file-secret", config.Auth.JWT.Secret)

	assert.Equal(suite.T(), "website", config.Submission.HoneypotField)
	assert.Equal(suite.T(), int64(3), config.Submission.RateLimit.MaxAttempts)
	assert.Equal(suite.T(), "redis", config.Submission.RateLimit.Store)
	assert.True(suite.T(), config.Events.Enabled)
	assert.Equal(suite.T(), []string{"kafka:9092"}, config.Events.Kafka.Brokers)
}

func (suite *ConfigTestSuite) TestLoadConfigKeepsDefaultsForUnsetKeys() {
	config, err := LoadConfig(suite.writeFile("deployment.yaml", testDeploymentYAML))
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), int64(3600), config.Auth.JWT.ValidityPeriod)
	assert.Equal(suite.T(), "submission_token", config.Submission.TokenField)
	assert.True(suite.T(), config.Submission.Token.Enabled)
	assert.True(suite.T(), config.Submission.RateLimit.Enabled)
	assert.Equal(suite.T(), int64(3600), config.Submission.RateLimit.Window)
	assert.Equal(suite.T(), "tidforms.entries", config.Events.Kafka.Topic)
	assert.True(suite.T(), config.Metrics.Enabled)
	assert.True(suite.T(), config.Cache.Enabled)
	assert.Equal(suite.T(), 1000, config.Cache.Size)
}

func (suite *ConfigTestSuite) TestLoadConfigEmptyFile() {
	config, err := LoadConfig(suite.writeFile("empty.yaml", ""))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), DefaultConfig(), *config)
}

func (suite *ConfigTestSuite) TestLoadConfigEnvironmentOverrides() {
	suite.T().Setenv("TIDFORMS_JWT_SECRET", "env-secret")
	suite.T().Setenv("TIDFORMS_DB_PASSWORD", "env-password")
	suite.T().Setenv("TIDFORMS_REDIS_ADDRESS", "redis:6380")
	suite.T().Setenv("TIDFORMS_REDIS_PASSWORD", "redis-pass")
	suite.T().Setenv("TIDFORMS_KAFKA_BROKERS", "k1:9092, k2:9092,")

	config, err := LoadConfig(suite.writeFile("deployment.yaml", testDeploymentYAML))
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "env-secret", config.Auth.JWT.Secret)
	assert.Equal(suite.T(), "env-password", config.Database.Forms.Password)
	assert.Equal(suite.T(), "redis:6380", config.Redis.Address)
	assert.Equal(suite.T(), "redis-pass", config.Redis.Password)
	assert.Equal(suite.T(), []string{"k1:9092", "k2:9092"}, config.Events.Kafka.Brokers)
}

func (suite *ConfigTestSuite) TestLoadEnvFiles() {
	envPath := suite.writeFile(".env", "TIDFORMS_JWT_SECRET=dotenv-secret\n")
	suite.T().Setenv("TIDFORMS_JWT_SECRET", "")
	require.NoError(suite.T(), os.Unsetenv("TIDFORMS_JWT_SECRET"))

	err := LoadEnvFiles(filepath.Join(suite.dir, "missing.env"), envPath)
	require.NoError(suite.T(), err)

	config, err := LoadConfig(suite.writeFile("deployment.yaml", "server:\n  port: 8000\n"))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "dotenv-secret", config.Auth.JWT.Secret)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	config, err := LoadConfig(filepath.Join(suite.dir, "non_existent_config.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "no such file or directory")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	config, err := LoadConfig(suite.writeFile("invalid.yaml", "server: [unclosed"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}
