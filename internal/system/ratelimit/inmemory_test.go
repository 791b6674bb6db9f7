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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type InMemoryCounterStoreTestSuite struct {
	suite.Suite
	store *InMemoryCounterStore
	clock time.Time
}

func TestInMemoryCounterStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCounterStoreTestSuite))
}

func (suite *InMemoryCounterStoreTestSuite) SetupTest() {
	suite.clock = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	suite.store = NewInMemoryCounterStore(time.Hour)
	suite.store.now = func() time.Time { return suite.clock }
}

func (suite *InMemoryCounterStoreTestSuite) TearDownTest() {
	require.NoError(suite.T(), suite.store.Close())
	goleak.VerifyNone(suite.T())
}

func (suite *InMemoryCounterStoreTestSuite) TestIncrementCountsWithinWindow() {
	ctx := context.Background()
	for i := int64(1); i <= 6; i++ {
		count, err := suite.store.Increment(ctx, "k", time.Hour)
		suite.NoError(err)
		suite.Equal(i, count)
	}

	other, err := suite.store.Increment(ctx, "other", time.Hour)
	suite.NoError(err)
	suite.Equal(int64(1), other)
}

func (suite *InMemoryCounterStoreTestSuite) TestWindowIsFixedFromFirstAttempt() {
	ctx := context.Background()

	_, _ = suite.store.Increment(ctx, "k", time.Hour)
	suite.clock = suite.clock.Add(59 * time.Minute)
	count, _ := suite.store.Increment(ctx, "k", time.Hour)
	suite.Equal(int64(2), count)

	// Later attempts do not extend the window.
	suite.clock = suite.clock.Add(time.Minute)
	count, _ = suite.store.Increment(ctx, "k", time.Hour)
	suite.Equal(int64(1), count)
}

func (suite *InMemoryCounterStoreTestSuite) TestCleanupExpired() {
	ctx := context.Background()
	_, _ = suite.store.Increment(ctx, "short", time.Minute)
	_, _ = suite.store.Increment(ctx, "long", time.Hour)
	suite.Equal(2, suite.store.size())

	suite.clock = suite.clock.Add(2 * time.Minute)
	suite.store.CleanupExpired()

	suite.Equal(1, suite.store.size())
}

func (suite *InMemoryCounterStoreTestSuite) TestConcurrentIncrementsAreNotLost() {
	ctx := context.Background()
	const workers = 50

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = suite.store.Increment(ctx, "shared", time.Hour)
		}()
	}
	wg.Wait()

	count, err := suite.store.Increment(ctx, "shared", time.Hour)
	suite.NoError(err)
	suite.Equal(int64(workers+1), count)
}

func (suite *InMemoryCounterStoreTestSuite) TestPing() {
	suite.NoError(suite.store.Ping(context.Background()))
}

func TestInMemoryCounterStoreCloseIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewInMemoryCounterStore(0)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestInMemoryCounterStoreCleanupRoutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewInMemoryCounterStore(10 * time.Millisecond)
	_, err := store.Increment(context.Background(), "k", time.Millisecond)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return store.size() == 0 }, time.Second, 10*time.Millisecond)
	assert.NoError(t, store.Close())
}
