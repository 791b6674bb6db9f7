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

package middleware

import (
	"context"
	"net/http"

	"github.com/magamawi/TiD-Forms/internal/system/log"
	"github.com/magamawi/TiD-Forms/internal/system/utils"
)

type contextKey string

// operatorContextKey holds the authenticated operator subject in the request context.
const operatorContextKey contextKey = "operator"

// OperatorTokenVerifier verifies operator bearer tokens and returns the authenticated subject.
type OperatorTokenVerifier interface {
	VerifyOperatorToken(token string) (string, error)
}

// WithOperatorAuth wraps an HTTP handler so that it only runs for requests carrying a valid
// operator bearer token. It returns the pattern and wrapped handler for http.ServeMux.
func WithOperatorAuth(pattern string, handler http.HandlerFunc,
	verifier OperatorTokenVerifier) (string, http.HandlerFunc) {
	return pattern, func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ExtractBearerToken(r)
		if err != nil {
			writeUnauthorized(w, "Missing or malformed bearer token")
			return
		}

		subject, err := verifier.VerifyOperatorToken(token)
		if err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OperatorAuthMiddleware")).
				Debug("Rejected operator token", log.Error(err))
			writeUnauthorized(w, "Invalid or expired bearer token")
			return
		}

		ctx := context.WithValue(r.Context(), operatorContextKey, subject)
		handler(w, r.WithContext(ctx))
	}
}

// WithOperatorAuthAndCORS applies the operator bearer token check and then the CORS headers.
func WithOperatorAuthAndCORS(pattern string, handler http.HandlerFunc, verifier OperatorTokenVerifier,
	opts CORSOptions) (string, http.HandlerFunc) {
	securedPattern, securedHandler := WithOperatorAuth(pattern, handler, verifier)
	return WithCORS(securedPattern, securedHandler, opts)
}

// GetOperator returns the authenticated operator subject stored in the context.
func GetOperator(ctx context.Context) string {
	subject, _ := ctx.Value(operatorContextKey).(string)
	return subject
}

func writeUnauthorized(w http.ResponseWriter, desc string) {
	utils.WriteJSONError(w, "unauthorized", desc, http.StatusUnauthorized,
		[]map[string]string{{"WWW-Authenticate": "Bearer"}})
}
