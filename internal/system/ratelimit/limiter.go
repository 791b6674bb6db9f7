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

package ratelimit

import (
	"context"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/log"
)

const (
	limiterLoggerComponentName = "SubmissionRateLimiter"
	keyPrefix                  = "tidforms:ratelimit:"
)

// LimiterInterface decides whether a source may make another submission attempt.
type LimiterInterface interface {
	Allow(ctx context.Context, source string) bool
}

// Limiter counts every attempt per source within a fixed window and rejects the attempts
// that exceed the configured maximum.
type Limiter struct {
	store       CounterStoreInterface
	enabled     bool
	maxAttempts int64
	window      time.Duration
}

// NewLimiter creates a limiter from the submission rate limit configuration.
func NewLimiter(store CounterStoreInterface, cfg config.RateLimitConfig) *Limiter {
	return &Limiter{
		store:       store,
		enabled:     cfg.Enabled,
		maxAttempts: cfg.MaxAttempts,
		window:      time.Duration(cfg.Window) * time.Second,
	}
}

// Allow records an attempt for the source and reports whether it is within the limit.
// Errors of the counter store never block a submission.
func (l *Limiter) Allow(ctx context.Context, source string) bool {
	if !l.enabled {
		return true
	}

	count, err := l.store.Increment(ctx, Key(source), l.window)
	if err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, limiterLoggerComponentName)).
			Error("Rate limit counter unavailable, allowing the attempt", log.Error(err))
		return true
	}

	return count <= l.maxAttempts
}

// Key returns the counter key of a source. The source is hashed so addresses are never stored in clear.
func Key(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return keyPrefix + hex.EncodeToString(sum[:])
}
