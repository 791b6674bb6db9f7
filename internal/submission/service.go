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

// Package submission implements the public form fetch and submission pipeline.
package submission

import (
	"context"
	"strings"
	"time"

	"github.com/magamawi/TiD-Forms/internal/entry"
	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"
	"github.com/magamawi/TiD-Forms/internal/system/events"
	"github.com/magamawi/TiD-Forms/internal/system/jwt"
	"github.com/magamawi/TiD-Forms/internal/system/log"
	"github.com/magamawi/TiD-Forms/internal/system/metrics"
	"github.com/magamawi/TiD-Forms/internal/system/ratelimit"
)

const (
	loggerComponentNameService = "SubmissionService"
	publishTimeout             = 5 * time.Second
)

// SubmissionServiceInterface defines the public operations of a form.
type SubmissionServiceInterface interface {
	GetPublicForm(ctx context.Context, formID string) (*PublicForm, *serviceerror.ServiceError)
	Submit(ctx context.Context, submission Submission) (*SubmissionResponse, *serviceerror.ServiceError)
}

// submissionService runs the anti-automation checks, validates the values and stores the entry.
type submissionService struct {
	formService   form.FormServiceInterface
	entryService  entry.EntryServiceInterface
	tokenService  jwt.TokenServiceInterface
	limiter       ratelimit.LimiterInterface
	publisher     events.PublisherInterface
	recorder      metrics.SubmissionRecorderInterface
	tokenRequired bool
	now           func() time.Time
}

// newSubmissionService creates a new instance of submissionService. recorder may be nil.
func newSubmissionService(formService form.FormServiceInterface, entryService entry.EntryServiceInterface,
	tokenService jwt.TokenServiceInterface, limiter ratelimit.LimiterInterface, publisher events.PublisherInterface,
	recorder metrics.SubmissionRecorderInterface, tokenRequired bool) SubmissionServiceInterface {
	return &submissionService{
		formService:   formService,
		entryService:  entryService,
		tokenService:  tokenService,
		limiter:       limiter,
		publisher:     publisher,
		recorder:      recorder,
		tokenRequired: tokenRequired,
		now:           time.Now,
	}
}

// GetPublicForm returns an active form together with a fresh submission token.
func (ss *submissionService) GetPublicForm(ctx context.Context, formID string) (*PublicForm,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if strings.TrimSpace(formID) == "" {
		return nil, &ErrorFormUnavailable
	}

	formDTO, svcErr := ss.formService.GetForm(ctx, formID)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorFormUnavailable
		}
		return nil, &ErrorInternalServerError
	}
	if formDTO.Status != form.FormStatusActive {
		return nil, &ErrorFormUnavailable
	}

	publicForm := &PublicForm{
		ID:          formDTO.ID,
		Name:        formDTO.Name,
		Description: formDTO.Description,
		Fields:      formDTO.Fields,
		Settings:    formDTO.Settings,
	}
	if ss.tokenRequired {
		token, err := ss.tokenService.IssueSubmissionToken(formDTO.ID)
		if err != nil {
			logger.Error("Failed to issue submission token", log.String(log.LoggerKeyFormID, formID), log.Error(err))
			return nil, &ErrorInternalServerError
		}
		publicForm.SubmissionToken = token
	}

	return publicForm, nil
}

// Submit runs a submission through the token, honeypot and rate limit checks, validates it against the
// form schema, stores the entry and publishes an entry created event.
func (ss *submissionService) Submit(ctx context.Context, submission Submission) (*SubmissionResponse,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService),
		log.String(log.LoggerKeyFormID, submission.FormID))
	start := ss.now()

	if ss.tokenRequired {
		if submission.Token == "" {
			return ss.reject(logger, start, metrics.OutcomeRejectedToken, "missing submission token")
		}
		if err := ss.tokenService.VerifySubmissionToken(submission.Token, submission.FormID); err != nil {
			return ss.reject(logger, start, metrics.OutcomeRejectedToken, err.Error())
		}
	}
	if submission.Honeypot != "" {
		return ss.reject(logger, start, metrics.OutcomeRejectedHoneypot, "honeypot field is filled")
	}
	if !ss.limiter.Allow(ctx, submission.SourceIP) {
		return ss.reject(logger, start, metrics.OutcomeRejectedRateLimit, "rate limit exceeded")
	}

	compiled, svcErr := ss.formService.GetCompiledForm(ctx, submission.FormID)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			ss.observe(metrics.OutcomeUnavailable, start)
			return nil, &ErrorFormUnavailable
		}
		ss.observe(metrics.OutcomeError, start)
		return nil, &ErrorInternalServerError
	}
	if compiled.Status != form.FormStatusActive {
		ss.observe(metrics.OutcomeUnavailable, start)
		return nil, &ErrorFormUnavailable
	}

	result := compiled.Schema.Validate(submission.Values)
	if !result.Valid {
		if logger.IsDebugEnabled() {
			logger.Debug("Submission failed validation", log.Int("errorCount", len(result.Errors)))
		}
		ss.observe(metrics.OutcomeInvalid, start)
		return &SubmissionResponse{
			Success:     false,
			Message:     compiled.Settings.ErrorMessage,
			FieldErrors: result.Errors,
		}, nil
	}

	created, svcErr := ss.entryService.CreateEntry(ctx, submission.FormID, result.Data, submission.SourceIP,
		submission.UserAgent)
	if svcErr != nil {
		logger.Error("Failed to store submission", log.String("code", svcErr.Code))
		ss.observe(metrics.OutcomeError, start)
		return nil, &ErrorSubmissionNotSaved
	}

	ss.publish(ctx, logger, created)
	ss.observe(metrics.OutcomeAccepted, start)

	return &SubmissionResponse{
		Success: true,
		Message: compiled.Settings.SuccessMessage,
	}, nil
}

// reject records an anti-automation rejection. The reason is logged but never returned.
func (ss *submissionService) reject(logger *log.Logger, start time.Time, outcome, reason string) (
	*SubmissionResponse, *serviceerror.ServiceError) {
	logger.Info("Submission rejected", log.String("outcome", outcome), log.String("reason", reason))
	ss.observe(outcome, start)
	return nil, &ErrorSubmissionRejected
}

// publish sends the entry created event. Failures are logged and never fail the submission.
func (ss *submissionService) publish(ctx context.Context, logger *log.Logger, created *entry.Entry) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.Event{
		Type:       events.EventTypeEntryCreated,
		FormID:     created.FormID,
		EntryID:    created.ID,
		OccurredAt: created.SubmittedAt,
	}
	if err := ss.publisher.Publish(publishCtx, event); err != nil {
		logger.Warn("Failed to publish entry event", log.String(log.LoggerKeyEntryID, created.ID), log.Error(err))
	}
}

func (ss *submissionService) observe(outcome string, start time.Time) {
	if ss.recorder != nil {
		ss.recorder.ObserveSubmission(outcome, ss.now().Sub(start))
	}
}
