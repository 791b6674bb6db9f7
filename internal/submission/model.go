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
	"encoding/json"

	"github.com/magamawi/TiD-Forms/internal/form"
	"github.com/magamawi/TiD-Forms/internal/form/model"
)

// PublicForm is the form definition served to the embed surface.
type PublicForm struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Fields          json.RawMessage `json:"fields"`
	Settings        form.Settings   `json:"settings"`
	SubmissionToken string          `json:"submission_token,omitempty"`
}

// Submission is a single attempt to submit a form.
type Submission struct {
	FormID    string
	Values    model.Values
	Honeypot  string
	Token     string
	SourceIP  string
	UserAgent string
}

// SubmissionResponse is the body returned for every submission attempt.
type SubmissionResponse struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// submissionRequest is the JSON body of a submission.
type submissionRequest struct {
	Values          model.Values `json:"values"`
	Honeypot        string       `json:"honeypot"`
	SubmissionToken string       `json:"submission_token"`
}
