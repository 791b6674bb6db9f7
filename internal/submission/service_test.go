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

package submission

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/magamawi/TiD-Forms/internal/entry"
	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/form/model"
	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/events"
	"github.com/magamawi/TiD-Forms/internal/system/metrics"
	"github.com/magamawi/TiD-Forms/internal/system/ratelimit"
	"github.com/magamawi/TiD-Forms/tests/mocks/entrymock"
	"github.com/magamawi/TiD-Forms/tests/mocks/formmock"
)

const newsletterFields = `[{"type":"email","name":"email","label":"Email","required":true},` +
	`{"type":"checkbox","name":"topics","label":"Topics","options":{"news":"News","events":"Events"}}]`

var fixedNow = time.Date(2025, 5, 20, 15, 4, 5, 0, time.UTC)

func newsletterForm(status form.FormStatus) *form.CompiledForm {
	schema, err := model.CompileSchema(json.RawMessage(newsletterFields))
	if err != nil {
		panic(err)
	}
	settings := form.DefaultSettings()
	settings.SuccessMessage = "Thanks for subscribing!"
	settings.ErrorMessage = "Please fix the highlighted fields."
	return &form.CompiledForm{
		Form: form.Form{
			ID:       "form-1",
			Name:     "Newsletter",
			Fields:   json.RawMessage(newsletterFields),
			Settings: settings,
			Status:   status,
		},
		Schema: schema,
	}
}

type stubTokenService struct {
	verifyErr error
}

func (s *stubTokenService) IssueOperatorToken(subject string) (string, error) {
	return "operator-" + subject, nil
}

func (s *stubTokenService) VerifyOperatorToken(token string) (string, error) {
	return "", errors.New("not supported")
}

func (s *stubTokenService) IssueSubmissionToken(formID string) (string, error) {
	return "token-" + formID, nil
}

func (s *stubTokenService) VerifySubmissionToken(token, formID string) error {
	if token != "token-"+formID {
		return errors.New("token issued for another form")
	}
	return s.verifyErr
}

type stubLimiter struct {
	allow bool
	calls int
}

func (l *stubLimiter) Allow(ctx context.Context, source string) bool {
	l.calls++
	return l.allow
}

type stubPublisher struct {
	published []events.Event
	err       error
}

func (p *stubPublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return p.err
}

func (p *stubPublisher) Close() error {
	return nil
}

type stubRecorder struct {
	outcomes []string
}

func (r *stubRecorder) ObserveSubmission(outcome string, duration time.Duration) {
	r.outcomes = append(r.outcomes, outcome)
}

type SubmissionServiceTestSuite struct {
	suite.Suite
	formService  *formmock.FormServiceInterfaceMock
	entryService *entrymock.EntryServiceInterfaceMock
	tokens       *stubTokenService
	limiter      *stubLimiter
	publisher    *stubPublisher
	recorder     *stubRecorder
	service      *submissionService
}

func TestSubmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}

func (suite *SubmissionServiceTestSuite) SetupTest() {
	suite.formService = formmock.NewFormServiceInterfaceMock(suite.T())
	suite.entryService = entrymock.NewEntryServiceInterfaceMock(suite.T())
	suite.tokens = &stubTokenService{}
	suite.limiter = &stubLimiter{allow: true}
	suite.publisher = &stubPublisher{}
	suite.recorder = &stubRecorder{}
	suite.service = newSubmissionService(suite.formService, suite.entryService, suite.tokens, suite.limiter,
		suite.publisher, suite.recorder, true).(*submissionService)
	suite.service.now = func() time.Time { return fixedNow }
}

func validSubmission() Submission {
	return Submission{
		FormID:    "form-1",
		Values:    model.Values{"email": model.StringValue(" john@example.com "), "topics": model.StringValue("news")},
		Token:     "token-form-1",
		SourceIP:  "203.0.113.9",
		UserAgent: "Mozilla/5.0",
	}
}

func (suite *SubmissionServiceTestSuite) TestGetPublicForm() {
	suite.formService.On("GetForm", mock.Anything, "form-1").Return(&newsletterForm(form.FormStatusActive).Form, nil)

	publicForm, svcErr := suite.service.GetPublicForm(context.Background(), "form-1")

	suite.Nil(svcErr)
	suite.Equal("Newsletter", publicForm.Name)
	suite.Equal("token-form-1", publicForm.SubmissionToken)
	suite.JSONEq(newsletterFields, string(publicForm.Fields))
}

func (suite *SubmissionServiceTestSuite) TestGetPublicFormUnavailable() {
	suite.formService.On("GetForm", mock.Anything, "inactive").
		Return(&newsletterForm(form.FormStatusInactive).Form, nil)
	suite.formService.On("GetForm", mock.Anything, "missing").Return(nil, &form.ErrorFormNotFound)
	suite.formService.On("GetForm", mock.Anything, "broken").Return(nil, &form.ErrorInternalServerError)

	_, svcErr := suite.service.GetPublicForm(context.Background(), "inactive")
	suite.Equal(&ErrorFormUnavailable, svcErr)
	_, svcErr = suite.service.GetPublicForm(context.Background(), "missing")
	suite.Equal(&ErrorFormUnavailable, svcErr)
	_, svcErr = suite.service.GetPublicForm(context.Background(), " ")
	suite.Equal(&ErrorFormUnavailable, svcErr)
	_, svcErr = suite.service.GetPublicForm(context.Background(), "broken")
	suite.Equal(&ErrorInternalServerError, svcErr)
}

func (suite *SubmissionServiceTestSuite) TestSubmitAccepted() {
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").Return(newsletterForm(form.FormStatusActive), nil)
	expected := model.Data{"email": model.StringValue("john@example.com"), "topics": model.ListValue("news")}
	suite.entryService.On("CreateEntry", mock.Anything, "form-1", expected, "203.0.113.9", "Mozilla/5.0").
		Return(&entry.Entry{ID: "entry-1", FormID: "form-1", SubmittedAt: fixedNow}, nil)

	response, svcErr := suite.service.Submit(context.Background(), validSubmission())

	suite.Nil(svcErr)
	suite.Equal(&SubmissionResponse{Success: true, Message: "Thanks for subscribing!"}, response)
	suite.Equal([]events.Event{{
		Type:       events.EventTypeEntryCreated,
		FormID:     "form-1",
		EntryID:    "entry-1",
		OccurredAt: fixedNow,
	}}, suite.publisher.published)
	suite.Equal([]string{metrics.OutcomeAccepted}, suite.recorder.outcomes)
}

func (suite *SubmissionServiceTestSuite) TestSubmitPublishFailureIsIgnored() {
	suite.publisher.err = errors.New("broker down")
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").Return(newsletterForm(form.FormStatusActive), nil)
	suite.entryService.On("CreateEntry", mock.Anything, "form-1", mock.Anything, mock.Anything, mock.Anything).
		Return(&entry.Entry{ID: "entry-1", FormID: "form-1"}, nil)

	response, svcErr := suite.service.Submit(context.Background(), validSubmission())

	suite.Nil(svcErr)
	suite.True(response.Success)
	suite.Len(suite.publisher.published, 1)
}

func (suite *SubmissionServiceTestSuite) TestSubmitSecurityRejections() {
	testCases := []struct {
		name    string
		mutate  func(s *Submission)
		limited bool
		outcome string
	}{
		{"MissingToken", func(s *Submission) { s.Token = "" }, false, metrics.OutcomeRejectedToken},
		{"ForeignToken", func(s *Submission) { s.Token = "token-form-2" }, false, metrics.OutcomeRejectedToken},
		{"Honeypot", func(s *Submission) { s.Honeypot = "http://spam.example" }, false,
			metrics.OutcomeRejectedHoneypot},
		{"RateLimited", func(s *Submission) {}, true, metrics.OutcomeRejectedRateLimit},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.limiter.allow = !tc.limited
			submission := validSubmission()
			tc.mutate(&submission)

			response, svcErr := suite.service.Submit(context.Background(), submission)

			suite.Nil(response)
			suite.Equal(&ErrorSubmissionRejected, svcErr)
			suite.Equal([]string{tc.outcome}, suite.recorder.outcomes)
			suite.Empty(suite.publisher.published)
		})
	}
}

func (suite *SubmissionServiceTestSuite) TestSubmitRejectsExpiredToken() {
	suite.tokens.verifyErr = errors.New("token has expired")

	_, svcErr := suite.service.Submit(context.Background(), validSubmission())

	suite.Equal(&ErrorSubmissionRejected, svcErr)
	suite.Equal(0, suite.limiter.calls)
}

func (suite *SubmissionServiceTestSuite) TestSubmitWithoutTokenCheck() {
	suite.service.tokenRequired = false
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").Return(newsletterForm(form.FormStatusActive), nil)
	suite.entryService.On("CreateEntry", mock.Anything, "form-1", mock.Anything, mock.Anything, mock.Anything).
		Return(&entry.Entry{ID: "entry-1", FormID: "form-1"}, nil)

	submission := validSubmission()
	submission.Token = ""
	response, svcErr := suite.service.Submit(context.Background(), submission)

	suite.Nil(svcErr)
	suite.True(response.Success)
}

func (suite *SubmissionServiceTestSuite) TestSubmitInvalidValues() {
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").Return(newsletterForm(form.FormStatusActive), nil)

	submission := validSubmission()
	submission.Values = model.Values{"email": model.StringValue("bad"), "topics": model.ListValue("news", "sports")}
	response, svcErr := suite.service.Submit(context.Background(), submission)

	suite.Nil(svcErr)
	suite.False(response.Success)
	suite.Equal("Please fix the highlighted fields.", response.Message)
	suite.Equal(map[string]string{
		"email":  "Email must be a valid email address.",
		"topics": "Invalid selection for Topics.",
	}, response.FieldErrors)
	suite.Equal([]string{metrics.OutcomeInvalid}, suite.recorder.outcomes)
}

func (suite *SubmissionServiceTestSuite) TestSubmitUnavailableForm() {
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").
		Return(newsletterForm(form.FormStatusInactive), nil).Once()

	_, svcErr := suite.service.Submit(context.Background(), validSubmission())
	suite.Equal(&ErrorFormUnavailable, svcErr)

	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").Return(nil, &form.ErrorFormNotFound).Once()
	_, svcErr = suite.service.Submit(context.Background(), validSubmission())
	suite.Equal(&ErrorFormUnavailable, svcErr)

	suite.Equal([]string{metrics.OutcomeUnavailable, metrics.OutcomeUnavailable}, suite.recorder.outcomes)
}

func (suite *SubmissionServiceTestSuite) TestSubmitPersistenceFailure() {
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").Return(newsletterForm(form.FormStatusActive), nil)
	suite.entryService.On("CreateEntry", mock.Anything, "form-1", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &entry.ErrorInternalServerError)

	response, svcErr := suite.service.Submit(context.Background(), validSubmission())

	suite.Nil(response)
	suite.Equal(&ErrorSubmissionNotSaved, svcErr)
	suite.Empty(suite.publisher.published)
	suite.Equal([]string{metrics.OutcomeError}, suite.recorder.outcomes)
}

func (suite *SubmissionServiceTestSuite) TestSixthAttemptWithinWindowIsRejected() {
	store := ratelimit.NewInMemoryCounterStore(time.Minute)
	defer func() {
		suite.NoError(store.Close())
	}()
	suite.service.limiter = ratelimit.NewLimiter(store, config.RateLimitConfig{
		Enabled:     true,
		MaxAttempts: 5,
		Window:      3600,
	})
	suite.formService.On("GetCompiledForm", mock.Anything, "form-1").
		Return(newsletterForm(form.FormStatusActive), nil).Times(5)
	suite.entryService.On("CreateEntry", mock.Anything, "form-1", mock.Anything, mock.Anything, mock.Anything).
		Return(&entry.Entry{ID: "entry-1", FormID: "form-1"}, nil).Times(5)

	for i := 0; i < 5; i++ {
		response, svcErr := suite.service.Submit(context.Background(), validSubmission())
		suite.Require().Nil(svcErr)
		suite.True(response.Success)
	}

	_, svcErr := suite.service.Submit(context.Background(), validSubmission())
	suite.Equal(&ErrorSubmissionRejected, svcErr)
}
