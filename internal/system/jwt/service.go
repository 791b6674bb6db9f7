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

// Package jwt provides functionality for generating and verifying the signed tokens of the server.
package jwt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/log"
	"github.com/magamawi/TiD-Forms/internal/system/utils"
)

const (
	defaultTokenValidity = 3600 // default validity period of 1 hour
	defaultIssuer        = "tidforms"
	minSecretLength      = 32
	loggerComponentName  = "JWTService"
)

var (
	// ErrInvalidToken is returned when a token cannot be parsed or fails verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenAudienceMismatch is returned when a valid token was issued for another audience.
	ErrTokenAudienceMismatch = errors.New("token audience mismatch")
)

// JWTServiceInterface defines the interface for JWT operations.
type JWTServiceInterface interface {
	GenerateJWT(sub, aud string, validityPeriod int64, claims map[string]interface{}) (string, int64, error)
	VerifyJWT(token, aud string) (jwt.MapClaims, error)
}

// JWTService signs and verifies HS256 tokens with the configured secret.
type JWTService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTService creates a JWT service from the JWT configuration. When no secret is configured an
// ephemeral one is generated and tokens issued by the process do not survive a restart.
func NewJWTService(cfg config.JWTConfig) (*JWTService, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		logger.Warn("No JWT secret configured, generating an ephemeral secret")
		secret = make([]byte, minSecretLength)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
	} else if len(secret) < minSecretLength {
		return nil, fmt.Errorf("JWT secret must be at least %d bytes long", minSecretLength)
	}

	issuer := cfg.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}

	return &JWTService{
		secret: secret,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// GenerateJWT generates a token for the subject and audience. It returns the token and its issue time.
func (js *JWTService) GenerateJWT(sub, aud string, validityPeriod int64, claims map[string]interface{}) (
	string, int64, error) {
	if validityPeriod <= 0 {
		validityPeriod = defaultTokenValidity
	}
	iat := js.now()

	payload := jwt.MapClaims{
		"sub": sub,
		"iss": js.issuer,
		"aud": aud,
		"exp": iat.Add(time.Duration(validityPeriod) * time.Second).Unix(),
		"iat": iat.Unix(),
		"nbf": iat.Unix(),
		"jti": utils.GenerateUUID(),
	}
	for key, value := range claims {
		if _, reserved := payload[key]; reserved {
			continue
		}
		payload[key] = value
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(js.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, iat.Unix(), nil
}

// VerifyJWT verifies the signature, the time claims, the issuer and the audience of the token
// and returns its claims.
func (js *JWTService) VerifyJWT(token, aud string) (jwt.MapClaims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(js.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(js.now),
	)

	claims := jwt.MapClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return js.secret, nil
	})
	if err != nil || parsed == nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	audiences, err := claims.GetAudience()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	for _, candidate := range audiences {
		if candidate == aud {
			return claims, nil
		}
	}

	return nil, ErrTokenAudienceMismatch
}
