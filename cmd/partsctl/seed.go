// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"

	"github.com/taibuivan/loonia/internal/bootstrap"
	"github.com/taibuivan/loonia/internal/core/catalog"
	"github.com/taibuivan/loonia/internal/platform/config"
)

// openPostgres opens the configured backend and insists it is PostgreSQL.
func openPostgres(ctx context.Context, opts *options) (*catalog.PostgresStore, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	backend, err := bootstrap.Open(ctx, cfg, opts.logger, nil)
	if err != nil {
		return nil, nil, err
	}

	if backend.Postgres == nil {
		backend.Close()
		return nil, nil, errors.New("seed needs CATALOG_BACKEND=postgres")
	}

	return backend.Postgres, backend.Close, nil
}
