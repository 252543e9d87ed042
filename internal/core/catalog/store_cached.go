// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/loonia/internal/platform/constants"
	"github.com/taibuivan/loonia/internal/platform/metrics"
)

// ErrCacheMiss is returned by a [Cache] when a key is absent.
var ErrCacheMiss = errors.New("catalog: cache miss")

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	Get(context context.Context, key string) ([]byte, error)
	Set(context context.Context, key string, value []byte, ttl time.Duration) error
}

// # Redis Cache

// RedisCache adapts a go-redis client to [Cache].
type RedisCache struct {
	client redis.Cmdable
}

// NewRedisCache wraps client.
func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns the stored value or [ErrCacheMiss].
func (cache *RedisCache) Get(context context.Context, key string) ([]byte, error) {
	value, err := cache.client.Get(context, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return value, err
}

// Set stores value under key for ttl.
func (cache *RedisCache) Set(context context.Context, key string, value []byte, ttl time.Duration) error {
	return cache.client.Set(context, key, value, ttl).Err()
}

// # Read-through Decorator

/*
CachedStore serves reads from a [Cache] and falls back to the wrapped [Store].

Description: Values are JSON encoded and expire after the configured TTL.
The cache never decides a result. Any cache failure is logged, counted, and
bypassed, and the wrapped store answers instead. Invalidation belongs to the
ingestion path, which flushes the catalog: prefix after writing.
*/
type CachedStore struct {
	next    Store
	cache   Cache
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewCachedStore decorates next with cache.
func NewCachedStore(next Store, cache Cache, ttl time.Duration, logger *slog.Logger, metrics *metrics.Metrics) *CachedStore {
	return &CachedStore{
		next:    next,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

// FetchAll implements [Store].
func (store *CachedStore) FetchAll(context context.Context) ([]*Product, error) {
	return readThrough(context, store, constants.RedisPrefixCatalog+"all", func() ([]*Product, error) {
		return store.next.FetchAll(context)
	})
}

// FindByField implements [Store].
func (store *CachedStore) FindByField(context context.Context, filter FieldFilter) ([]*Product, error) {
	return readThrough(context, store, CacheKey(filter), func() ([]*Product, error) {
		return store.next.FindByField(context, filter)
	})
}

// Count implements [Store].
func (store *CachedStore) Count(context context.Context, filter FieldFilter) (int, error) {
	return readThrough(context, store, constants.RedisPrefixCatalog+"count:"+filterKey(filter), func() (int, error) {
		return store.next.Count(context, filter)
	})
}

// CacheKey returns the cache key used for filter reads, exposed for tooling
// that needs to invalidate single entries.
func CacheKey(filter FieldFilter) string {
	return constants.RedisPrefixCatalog + "find:" + filterKey(filter)
}

func filterKey(filter FieldFilter) string {
	value := Normalize(filter.Value)
	if filter.Field == FieldID {
		value = filter.Value
	}
	return fmt.Sprintf("%s:%s:%s", filter.Field, filter.Op, value)
}

// readThrough looks key up in the cache and loads and stores it on a miss.
func readThrough[T any](context context.Context, store *CachedStore, key string, load func() (T, error)) (T, error) {
	raw, err := store.cache.Get(context, key)
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			store.metrics.ObserveCache(metrics.CacheHit)
			return cached, nil
		}
		store.logger.WarnContext(context, "cache_decode_failed", slog.String("key", key))
		store.metrics.ObserveCache(metrics.CacheError)
	case errors.Is(err, ErrCacheMiss):
		store.metrics.ObserveCache(metrics.CacheMiss)
	default:
		store.logger.WarnContext(context, "cache_get_failed", slog.String("key", key), slog.Any("error", err))
		store.metrics.ObserveCache(metrics.CacheError)
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		store.logger.WarnContext(context, "cache_encode_failed", slog.String("key", key), slog.Any("error", err))
		return value, nil
	}

	if err := store.cache.Set(context, key, encoded, store.ttl); err != nil {
		store.logger.WarnContext(context, "cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}
