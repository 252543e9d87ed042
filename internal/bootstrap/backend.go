// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bootstrap opens the catalog backend selected by configuration.

It is shared by the API server and the partsctl command so both read the
catalog through the same store stack:

	Mongo or Postgres store -> optional Redis read-through cache
*/
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/taibuivan/loonia/internal/api"
	"github.com/taibuivan/loonia/internal/core/catalog"
	"github.com/taibuivan/loonia/internal/platform/config"
	"github.com/taibuivan/loonia/internal/platform/constants"
	"github.com/taibuivan/loonia/internal/platform/metrics"
	"github.com/taibuivan/loonia/internal/platform/migration"
	mongostore "github.com/taibuivan/loonia/internal/platform/mongo"
	pgstore "github.com/taibuivan/loonia/internal/platform/postgres"
	redisstore "github.com/taibuivan/loonia/internal/platform/redis"
)

// Backend is an opened catalog store plus the probes and cleanup of the
// connections behind it.
type Backend struct {
	// Store is the fully decorated store resolvers should use.
	Store catalog.Store

	// Postgres is set when the relational backend is selected. partsctl seeds through it.
	Postgres *catalog.PostgresStore

	// Checks are the readiness probes of every opened connection.
	Checks []api.Check

	closers []func()
}

/*
Open connects to the configured backend and wraps it with the Redis cache
when REDIS_URL is set.

Parameters:
  - context: context.Context (Bounds connection attempts)
  - cfg: *config.Config
  - logger: *slog.Logger
  - m: *metrics.Metrics (May be nil)

Returns:
  - *Backend: Ready-to-use store, Close must be called on shutdown
  - error: Connection or migration failures
*/
func Open(context context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*Backend, error) {
	backend := &Backend{}

	var err error
	switch cfg.CatalogBackend {
	case constants.BackendPostgres:
		err = backend.openPostgres(context, cfg, logger)
	default:
		err = backend.openMongo(context, cfg, logger)
	}
	if err == nil && cfg.CacheEnabled() {
		err = backend.openCache(context, cfg, logger, m)
	}

	if err != nil {
		backend.Close()
		return nil, err
	}

	logger.Info("catalog_backend_ready",
		slog.String("backend", cfg.CatalogBackend),
		slog.Bool("cache", cfg.CacheEnabled()),
	)

	return backend, nil
}

// Close releases every connection in reverse opening order.
func (backend *Backend) Close() {
	for _, closer := range slices.Backward(backend.closers) {
		closer()
	}
	backend.closers = nil
}

func (backend *Backend) openMongo(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	client, err := mongostore.NewClient(ctx, cfg.MongoURI, logger)
	if err != nil {
		return err
	}
	backend.closers = append(backend.closers, func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongo_disconnect_failed", slog.Any("error", err))
		}
	})

	collection := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
	backend.Store = catalog.NewMongoStore(collection, logger)
	backend.Checks = append(backend.Checks, api.Check{
		Name:  constants.BackendMongo,
		Probe: func(ctx context.Context) error { return mongostore.Ping(ctx, client) },
	})

	return nil
}

func (backend *Backend) openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
		return err
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	backend.closers = append(backend.closers, pool.Close)

	backend.Postgres = catalog.NewPostgresStore(pool, logger)
	backend.Store = backend.Postgres
	backend.Checks = append(backend.Checks, api.Check{
		Name:  constants.BackendPostgres,
		Probe: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	})

	return nil
}

func (backend *Backend) openCache(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) error {
	client, err := redisstore.NewClient(ctx, cfg.RedisURL, logger)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	backend.closers = append(backend.closers, func() {
		if err := client.Close(); err != nil {
			logger.Error("redis_close_failed", slog.Any("error", err))
		}
	})

	backend.Store = catalog.NewCachedStore(backend.Store, catalog.NewRedisCache(client), cfg.CacheTTL, logger, m)
	backend.Checks = append(backend.Checks, api.Check{
		Name:  "redis",
		Probe: func(ctx context.Context) error { return redisstore.Ping(ctx, client) },
	})

	return nil
}
