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

// Package cache provides bounded in-memory caches with per entry expiry.
package cache

import (
	"time"

	"github.com/magamawi/TiD-Forms/internal/system/config"
)

// CacheInterface defines the operations of a cache keyed by string.
type CacheInterface[T any] interface {
	Set(key string, value T)
	Get(key string) (T, bool)
	Delete(key string)
	Clear()
	IsEnabled() bool
	GetName() string
	GetStats() CacheStat
	CleanupExpired()
}

// NewCache creates a named in-memory cache from the cache configuration. A disabled cache stores nothing.
func NewCache[T any](name string, cfg config.CacheConfig) CacheInterface[T] {
	return newInMemoryCache[T](name, cfg.Enabled, cfg.Size, time.Duration(cfg.TTL)*time.Second)
}
