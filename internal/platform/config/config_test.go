// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/loonia/internal/platform/config"
)

/*
TestLoad_Defaults verifies the defaults applied when nothing is set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mongo", cfg.CatalogBackend)
	assert.Equal(t, "products", cfg.MongoCollection)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.CacheEnabled())
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_PostgresRequiresDSN checks the backend-specific requirement.
*/
func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/loonia")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.CatalogBackend)
}

/*
TestLoad_UnknownBackend rejects unsupported backends.
*/
func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "cassandra")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestConfig_OriginAllowed checks suffix matching against configured domains.
*/
func TestConfig_OriginAllowed(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "mongo")
	t.Setenv("ALLOWED_ORIGINS", "looniatraders.com, example.org")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.OriginAllowed("https://looniatraders.com"))
	assert.True(t, cfg.OriginAllowed("https://shop.example.org"))
	assert.False(t, cfg.OriginAllowed("https://evil.test"))
}
