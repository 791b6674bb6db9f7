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
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/magamawi/TiD-Forms/internal/form/model"
	serverconst "github.com/magamawi/TiD-Forms/internal/system/constants"
	"github.com/magamawi/TiD-Forms/internal/system/error/serviceerror"
	"github.com/magamawi/TiD-Forms/internal/system/log"
	sysutils "github.com/magamawi/TiD-Forms/internal/system/utils"
)

const (
	loggerComponentNameHandler = "SubmissionHandler"
	maxSubmissionBodySize      = 1 << 20
	listSuffix                 = "[]"
)

// submissionHandler serves the public form and submission endpoints.
type submissionHandler struct {
	submissionService SubmissionServiceInterface
	trustProxyHeaders bool
	honeypotField     string
	tokenField        string
}

func newSubmissionHandler(submissionService SubmissionServiceInterface, trustProxyHeaders bool,
	honeypotField, tokenField string) *submissionHandler {
	return &submissionHandler{
		submissionService: submissionService,
		trustProxyHeaders: trustProxyHeaders,
		honeypotField:     honeypotField,
		tokenField:        tokenField,
	}
}

// HandlePublicFormGetRequest handles the public form fetch request.
func (sh *submissionHandler) HandlePublicFormGetRequest(w http.ResponseWriter, r *http.Request) {
	publicForm, svcErr := sh.submissionService.GetPublicForm(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		writeSubmissionError(w, svcErr)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	sysutils.WriteJSONResponse(w, http.StatusOK, publicForm)
}

// HandleSubmissionPostRequest handles a submission of a public form.
func (sh *submissionHandler) HandleSubmissionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	submission, err := sh.parseSubmission(w, r)
	if err != nil {
		logger.Debug("Failed to read submission body", log.Error(err))
		writeSubmissionError(w, &ErrorInvalidRequestFormat)
		return
	}
	submission.FormID = r.PathValue("id")
	submission.SourceIP = sysutils.GetClientIP(r, sh.trustProxyHeaders)
	submission.UserAgent = r.Header.Get(serverconst.UserAgentHeaderName)

	response, svcErr := sh.submissionService.Submit(r.Context(), submission)
	if svcErr != nil {
		writeSubmissionError(w, svcErr)
		return
	}

	statusCode := http.StatusCreated
	if !response.Success {
		statusCode = http.StatusBadRequest
	}
	sysutils.WriteJSONResponse(w, statusCode, response)
}

// parseSubmission reads a JSON or form encoded submission body.
func (sh *submissionHandler) parseSubmission(w http.ResponseWriter, r *http.Request) (Submission, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(serverconst.ContentTypeHeaderName))

	if mediaType == serverconst.ContentTypeJSON {
		request, err := sysutils.DecodeJSONBody[submissionRequest](r)
		if err != nil {
			return Submission{}, err
		}
		values := request.Values
		if values == nil {
			values = model.Values{}
		}
		return Submission{
			Values:   values,
			Honeypot: request.Honeypot,
			Token:    request.SubmissionToken,
		}, nil
	}

	if r.Body == nil {
		return Submission{}, errors.New("request body is empty")
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmissionBodySize)
	if mediaType == serverconst.ContentTypeMultipartForm {
		if err := r.ParseMultipartForm(maxSubmissionBodySize); err != nil {
			return Submission{}, err
		}
	} else if err := r.ParseForm(); err != nil {
		return Submission{}, err
	}

	return sh.submissionFromForm(r.PostForm), nil
}

// submissionFromForm maps form encoded fields to submitted values. Keys ending in "[]" and repeated keys
// become lists. When both "name" and "name[]" are sent, the plain items come first.
func (sh *submissionHandler) submissionFromForm(form url.Values) Submission {
	submission := Submission{Values: make(model.Values, len(form))}
	listItems := make(map[string][]string)

	for key, items := range form {
		if len(items) == 0 {
			continue
		}
		switch key {
		case sh.honeypotField:
			submission.Honeypot = items[0]
			continue
		case sh.tokenField:
			submission.Token = items[0]
			continue
		}

		if name, isList := strings.CutSuffix(key, listSuffix); isList {
			listItems[name] = items
			continue
		}
		if len(items) > 1 {
			submission.Values[key] = model.ListValue(items...)
		} else {
			submission.Values[key] = model.StringValue(items[0])
		}
	}

	for name, items := range listItems {
		merged := form[name]
		if len(merged) == 0 || name == sh.honeypotField || name == sh.tokenField {
			submission.Values[name] = model.ListValue(items...)
			continue
		}
		submission.Values[name] = model.ListValue(append(append([]string{}, merged...), items...)...)
	}

	return submission
}

// writeSubmissionError writes the public error body. The message never carries internal detail.
func writeSubmissionError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
		if svcErr.Code == ErrorFormUnavailable.Code {
			statusCode = http.StatusNotFound
		}
	}

	sysutils.WriteJSONResponse(w, statusCode, SubmissionResponse{
		Success: false,
		Message: svcErr.ErrorDescription,
	})
}
