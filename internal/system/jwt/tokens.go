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

package jwt

import (
	"errors"
	"fmt"

	"github.com/magamawi/TiD-Forms/internal/system/config"
)

const (
	// OperatorAudience is the audience of the bearer tokens accepted by the operator API.
	OperatorAudience = "tidforms-operator"
	// SubmissionAudience is the audience of the tokens embedded in public forms.
	SubmissionAudience = "tidforms-submission"

	formIDClaim = "form_id"
)

// ErrTokenFormMismatch is returned when a submission token was issued for another form.
var ErrTokenFormMismatch = errors.New("submission token issued for another form")

// TokenServiceInterface defines the operator and submission token operations of the server.
type TokenServiceInterface interface {
	IssueOperatorToken(subject string) (string, error)
	VerifyOperatorToken(token string) (string, error)
	IssueSubmissionToken(formID string) (string, error)
	VerifySubmissionToken(token, formID string) error
}

// TokenService issues and verifies operator and submission tokens.
type TokenService struct {
	jwtService               JWTServiceInterface
	validityPeriod           int64
	submissionValidityPeriod int64
}

// NewTokenService creates a token service.
func NewTokenService(jwtService JWTServiceInterface, cfg config.JWTConfig) *TokenService {
	return &TokenService{
		jwtService:               jwtService,
		validityPeriod:           cfg.ValidityPeriod,
		submissionValidityPeriod: cfg.SubmissionValidityPeriod,
	}
}

// IssueOperatorToken issues an operator bearer token for the subject.
func (ts *TokenService) IssueOperatorToken(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("subject must not be empty")
	}
	token, _, err := ts.jwtService.GenerateJWT(subject, OperatorAudience, ts.validityPeriod, nil)
	return token, err
}

// VerifyOperatorToken verifies an operator bearer token and returns its subject.
func (ts *TokenService) VerifyOperatorToken(token string) (string, error) {
	claims, err := ts.jwtService.VerifyJWT(token, OperatorAudience)
	if err != nil {
		return "", err
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return subject, nil
}

// IssueSubmissionToken issues the token a visitor must echo back when submitting the form.
func (ts *TokenService) IssueSubmissionToken(formID string) (string, error) {
	token, _, err := ts.jwtService.GenerateJWT("anonymous", SubmissionAudience, ts.submissionValidityPeriod,
		map[string]interface{}{formIDClaim: formID})
	return token, err
}

// VerifySubmissionToken verifies a submission token and checks that it was issued for the form.
func (ts *TokenService) VerifySubmissionToken(token, formID string) error {
	claims, err := ts.jwtService.VerifyJWT(token, SubmissionAudience)
	if err != nil {
		return err
	}

	if claimed, ok := claims[formIDClaim].(string); !ok || claimed != formID {
		return ErrTokenFormMismatch
	}
	return nil
}
