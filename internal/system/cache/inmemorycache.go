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

package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/magamawi/TiD-Forms/internal/system/log"
)

const loggerComponentName = "InMemoryCache"

// inMemoryCache is a CacheInterface implementation that evicts the least recently used entry when full.
type inMemoryCache[T any] struct {
	enabled     bool
	name        string
	entries     map[string]*list.Element
	accessOrder *list.List
	mu          sync.Mutex
	size        int
	ttl         time.Duration
	now         func() time.Time
	hitCount    int64
	missCount   int64
	evictCount  int64
}

// newInMemoryCache creates a new instance of inMemoryCache.
func newInMemoryCache[T any](name string, enabled bool, size int, ttl time.Duration) *inMemoryCache[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("name", name))

	if !enabled {
		logger.Debug("In-memory cache is disabled")
		return &inMemoryCache[T]{
			name:    name,
			enabled: false,
		}
	}

	cacheSize := size
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	cacheTTL := ttl
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL * time.Second
	}

	logger.Debug("Initializing in-memory cache", log.Int("size", cacheSize), log.Any("ttl", cacheTTL))

	return &inMemoryCache[T]{
		enabled:     true,
		name:        name,
		entries:     make(map[string]*list.Element),
		accessOrder: list.New(),
		size:        cacheSize,
		ttl:         cacheTTL,
		now:         time.Now,
	}
}

// Set adds or updates an entry in the cache.
func (c *inMemoryCache[T]) Set(key string, value T) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiryTime := c.now().Add(c.ttl)

	if element, exists := c.entries[key]; exists {
		entry := element.Value.(*cacheEntry[T])
		entry.value = value
		entry.expiryTime = expiryTime
		c.accessOrder.MoveToFront(element)
		return
	}

	c.entries[key] = c.accessOrder.PushFront(&cacheEntry[T]{
		key:        key,
		value:      value,
		expiryTime: expiryTime,
	})

	if len(c.entries) > c.size {
		c.evictOldest()
	}
}

// Get retrieves a value from the cache.
func (c *inMemoryCache[T]) Get(key string) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	element, exists := c.entries[key]
	if !exists {
		c.missCount++
		return zero, false
	}

	entry := element.Value.(*cacheEntry[T])
	if !c.now().Before(entry.expiryTime) {
		c.deleteElement(element)
		c.missCount++
		return zero, false
	}

	c.accessOrder.MoveToFront(element)
	c.hitCount++
	return entry.value, true
}

// Delete removes an entry from the cache.
func (c *inMemoryCache[T]) Delete(key string) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.entries[key]; exists {
		c.deleteElement(element)
	}
}

// Clear removes all entries from the cache.
func (c *inMemoryCache[T]) Clear() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.accessOrder.Init()
	c.hitCount = 0
	c.missCount = 0
	c.evictCount = 0
}

// IsEnabled returns whether the cache is enabled.
func (c *inMemoryCache[T]) IsEnabled() bool {
	return c.enabled
}

// GetName returns the name of the cache.
func (c *inMemoryCache[T]) GetName() string {
	return c.name
}

// GetStats returns cache statistics.
func (c *inMemoryCache[T]) GetStats() CacheStat {
	if !c.enabled {
		return CacheStat{Enabled: false}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	totalOps := c.hitCount + c.missCount
	var hitRate float64
	if totalOps > 0 {
		hitRate = float64(c.hitCount) / float64(totalOps)
	}

	return CacheStat{
		Enabled:    true,
		Size:       len(c.entries),
		MaxSize:    c.size,
		HitCount:   c.hitCount,
		MissCount:  c.missCount,
		HitRate:    hitRate,
		EvictCount: c.evictCount,
	}
}

// CleanupExpired removes all expired entries from the cache.
func (c *inMemoryCache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	cleaned := 0
	for _, element := range c.entries {
		if !now.Before(element.Value.(*cacheEntry[T]).expiryTime) {
			c.deleteElement(element)
			cleaned++
		}
	}

	if cleaned > 0 {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
			log.String("name", c.name)).Debug("Expired cache entries cleaned", log.Int("count", cleaned))
	}
}

// evictOldest removes the least recently used entry.
func (c *inMemoryCache[T]) evictOldest() {
	if oldest := c.accessOrder.Back(); oldest != nil {
		c.deleteElement(oldest)
		c.evictCount++
	}
}

func (c *inMemoryCache[T]) deleteElement(element *list.Element) {
	entry := element.Value.(*cacheEntry[T])
	delete(c.entries, entry.key)
	c.accessOrder.Remove(element)
}
