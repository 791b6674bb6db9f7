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
	"sync"
	"time"

	"github.com/magamawi/TiD-Forms/internal/system/log"
)

const (
	inMemoryLoggerComponentName = "InMemoryCounterStore"
	defaultCleanupInterval      = 60 * time.Second
)

type counterEntry struct {
	count      int64
	expiryTime time.Time
}

// InMemoryCounterStore is a CounterStoreInterface implementation kept in process memory.
type InMemoryCounterStore struct {
	mu       sync.Mutex
	counters map[string]*counterEntry
	now      func() time.Time
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewInMemoryCounterStore creates an in-memory counter store and starts the routine that removes
// expired counters at the given interval.
func NewInMemoryCounterStore(cleanupInterval time.Duration) *InMemoryCounterStore {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}

	s := &InMemoryCounterStore{
		counters: make(map[string]*counterEntry),
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.runCleanup(cleanupInterval)

	return s
}

// Increment atomically increments the counter of the key.
func (s *InMemoryCounterStore) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, exists := s.counters[key]
	if !exists || !now.Before(entry.expiryTime) {
		entry = &counterEntry{expiryTime: now.Add(window)}
		s.counters[key] = entry
	}
	entry.count++

	return entry.count, nil
}

// Ping always succeeds for the in-memory store.
func (s *InMemoryCounterStore) Ping(_ context.Context) error {
	return nil
}

// Close stops the cleanup routine and waits for it to exit.
func (s *InMemoryCounterStore) Close() error {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
	return nil
}

// CleanupExpired removes all expired counters from the store.
func (s *InMemoryCounterStore) CleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cleaned := 0
	for key, entry := range s.counters {
		if !now.Before(entry.expiryTime) {
			delete(s.counters, key)
			cleaned++
		}
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, inMemoryLoggerComponentName))
	if cleaned > 0 && logger.IsDebugEnabled() {
		logger.Debug("Expired rate limit counters cleaned", log.Int("count", cleaned))
	}
}

// size returns the number of counters currently held.
func (s *InMemoryCounterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counters)
}

// runCleanup removes expired counters until the store is closed.
func (s *InMemoryCounterStore) runCleanup(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CleanupExpired()
		case <-s.stop:
			return
		}
	}
}
