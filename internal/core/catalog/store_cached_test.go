// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/loonia/internal/core/catalog"
	"github.com/taibuivan/loonia/internal/platform/metrics"
)

// fakeCache is an in-memory [catalog.Cache].
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (cache *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failGet != nil {
		return nil, cache.failGet
	}
	value, ok := cache.entries[key]
	if !ok {
		return nil, catalog.ErrCacheMiss
	}
	return value, nil
}

func (cache *fakeCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failSet != nil {
		return cache.failSet
	}
	cache.entries[key] = value
	cache.ttls[key] = ttl
	return nil
}

/*
TestCachedStore_ReadThrough serves the second read from the cache.
*/
func TestCachedStore_ReadThrough(t *testing.T) {
	backing := &countingStore{Store: catalog.NewMemoryStore(sampleCatalog())}
	cache := newFakeCache()
	m := metrics.New()
	store := catalog.NewCachedStore(backing, cache, time.Minute, discardLogger(), m)
	ctx := context.Background()
	filter := catalog.FieldFilter{Field: catalog.FieldPartNumber, Op: catalog.MatchEqual, Value: " 789 "}

	first, err := store.FindByField(ctx, filter)
	require.NoError(t, err)
	second, err := store.FindByField(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, int32(1), backing.calls.Load())
	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, first[0].Groups, second[0].Groups)
	assert.Equal(t, time.Minute, cache.ttls["catalog:find:part_number:eq:789"])
	assert.Equal(t, "catalog:find:part_number:eq:789", catalog.CacheKey(filter))

	total, err := store.Count(ctx, catalog.FieldFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	_, ok := cache.entries["catalog:count:::"]
	assert.True(t, ok)

	all, err := store.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	_, ok = cache.entries["catalog:all"]
	assert.True(t, ok)
}

/*
TestCachedStore_CacheFailuresAreBypassed answers from the store when the cache is down.
*/
func TestCachedStore_CacheFailuresAreBypassed(t *testing.T) {
	backing := &countingStore{Store: catalog.NewMemoryStore(sampleCatalog())}
	cache := newFakeCache()
	cache.failGet = errors.New("redis: connection refused")
	cache.failSet = errors.New("redis: connection refused")
	store := catalog.NewCachedStore(backing, cache, time.Minute, discardLogger(), nil)

	for range 2 {
		products, err := store.FetchAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, products, 3)
	}

	assert.Equal(t, int32(2), backing.calls.Load())
}

/*
TestCachedStore_CorruptEntry reloads when a cached value cannot be decoded.
*/
func TestCachedStore_CorruptEntry(t *testing.T) {
	backing := &countingStore{Store: catalog.NewMemoryStore(sampleCatalog())}
	cache := newFakeCache()
	cache.entries["catalog:all"] = []byte("{not json")
	store := catalog.NewCachedStore(backing, cache, time.Minute, discardLogger(), nil)

	products, err := store.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, int32(1), backing.calls.Load())
}

/*
TestCachedStore_StoreErrorNotCached propagates store errors and caches nothing.
*/
func TestCachedStore_StoreErrorNotCached(t *testing.T) {
	boom := errors.New("boom")
	cache := newFakeCache()
	store := catalog.NewCachedStore(failingStore{err: boom}, cache, time.Minute, discardLogger(), nil)

	_, err := store.FetchAll(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, cache.entries)
}
