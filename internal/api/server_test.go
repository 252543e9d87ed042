// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/loonia/internal/api"
	"github.com/taibuivan/loonia/internal/core/catalog"
	"github.com/taibuivan/loonia/internal/platform/config"
	"github.com/taibuivan/loonia/internal/platform/metrics"
)

func newTestServer(t *testing.T, checks []api.Check) *api.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	store := catalog.NewMemoryStore([]*catalog.Product{{
		ID:       "p1",
		Category: "TOYOTA",
		Groups: []catalog.HrefGroup{{
			Tag:   "Engine",
			Cards: []catalog.Card{{Title: "Head", Parts: []catalog.Part{{Number: "789", Name: "Seal", Price: "12"}}}},
		}},
	}})

	liveness, readiness := api.NewHealthHandlers(checks, logger)
	cfg := &config.Config{ServerPort: "0", Environment: "development"}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return api.NewServer(ctx, cfg, logger, m, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalog.NewHandler(catalog.NewService(store, logger, m)),
	})
}

func get(t *testing.T, server *api.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

/*
TestServer_Routes exercises the wired router end to end.
*/
func TestServer_Routes(t *testing.T) {
	server := newTestServer(t, nil)

	recorder := get(t, server, "/api/v1/parts/789")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	assert.Contains(t, recorder.Body.String(), `"part_name":"Seal"`)

	assert.Equal(t, http.StatusNotFound, get(t, server, "/api/v1/parts/000").Code)
	assert.Equal(t, http.StatusOK, get(t, server, "/health").Code)

	metricsBody := get(t, server, "/metrics").Body.String()
	assert.Contains(t, metricsBody, `catalog_queries_total{outcome="ok",resolver="part"} 1`)
	assert.Contains(t, metricsBody, `catalog_queries_total{outcome="not_found",resolver="part"} 1`)
	assert.Contains(t, metricsBody, `parts/{number}"`)
}

/*
TestServer_Readiness reports every probe and degrades on failure.
*/
func TestServer_Readiness(t *testing.T) {
	healthy := newTestServer(t, []api.Check{
		{Name: "mongo", Probe: func(context.Context) error { return nil }},
	})
	assert.Equal(t, http.StatusOK, get(t, healthy, "/ready").Code)

	degraded := newTestServer(t, []api.Check{
		{Name: "mongo", Probe: func(context.Context) error { return nil }},
		{Name: "redis", Probe: func(context.Context) error { return errors.New("connection refused") }},
	})
	recorder := get(t, degraded, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var body struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name  string `json:"name"`
				OK    bool   `json:"ok"`
				Error string `json:"error"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Data.Status)
	require.Len(t, body.Data.Checks, 2)
	assert.True(t, body.Data.Checks[0].OK)
	assert.False(t, body.Data.Checks[1].OK)
	assert.Equal(t, "connection refused", body.Data.Checks[1].Error)
}
