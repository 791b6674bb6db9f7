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

// Package ratelimit provides keyed attempt counters with a fixed expiry and the submission limiter built on them.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magamawi/TiD-Forms/internal/system/config"
)

const (
	// StoreTypeInMemory keeps the counters in the memory of the server process.
	StoreTypeInMemory = "inmemory"
	// StoreTypeRedis keeps the counters in a Redis server shared by every server process.
	StoreTypeRedis = "redis"
)

// CounterStoreInterface defines an atomic counter store with per key expiry.
type CounterStoreInterface interface {
	// Increment atomically increments the counter of the key and returns the new value. The expiry of
	// the key is set to the window when the counter is created and is never extended afterwards.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	// Ping verifies that the store can serve requests.
	Ping(ctx context.Context) error
	// Close releases the resources held by the store.
	Close() error
}

// NewCounterStore creates the counter store selected in the submission rate limit configuration.
func NewCounterStore(cfg config.Config) (CounterStoreInterface, error) {
	rateLimitConfig := cfg.Submission.RateLimit

	switch rateLimitConfig.Store {
	case "", StoreTypeInMemory:
		return NewInMemoryCounterStore(time.Duration(rateLimitConfig.CleanupInterval) * time.Second), nil
	case StoreTypeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisCounterStore(client), nil
	default:
		return nil, fmt.Errorf("unsupported rate limit store: %s", rateLimitConfig.Store)
	}
}
