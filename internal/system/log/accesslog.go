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

package log

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// AccessLogOptions configures the access log handler.
type AccessLogOptions struct {
	// ClientIP resolves the client address. The host part of RemoteAddr is used when nil.
	ClientIP func(r *http.Request) string
	// QuietPathPrefixes lists request paths logged at debug level, such as probes and scrapes.
	QuietPathPrefixes []string
}

// AccessLogHandler logs HTTP requests in Apache CLF with response time.
func AccessLogHandler(logger *Logger, next http.Handler, opts AccessLogOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		elapsedMs := time.Since(start).Milliseconds()

		// The last %d is the response time in milliseconds.
		msg := fmt.Sprintf(
			`%s - - [%s] "%s %s %s" %d %d %d`,
			opts.clientIP(r),
			start.Format("02/Jan/2006:15:04:05 -0700"),
			r.Method,
			r.RequestURI,
			r.Proto,
			lrw.statusCode,
			lrw.size,
			elapsedMs,
		)
		fields := []Field{Int("status", lrw.statusCode), Any("durationMs", elapsedMs)}

		if opts.isQuiet(r.URL.Path) {
			logger.Debug(msg, fields...)
			return
		}
		logger.Info(msg, fields...)
	})
}

func (o AccessLogOptions) clientIP(r *http.Request) string {
	if o.ClientIP != nil {
		return o.ClientIP(r)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (o AccessLogOptions) isQuiet(path string) bool {
	for _, prefix := range o.QuietPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

// WriteHeader captures the status code.
func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := lrw.ResponseWriter.Write(b)
	lrw.size += size
	return size, err
}
