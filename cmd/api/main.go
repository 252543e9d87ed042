// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Loonia catalog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and an optional .env).
//  3. Open the catalog backend (MongoDB, or PostgreSQL with migrations).
//  4. Wrap it with the Redis read-through cache when configured.
//  5. Wire HTTP handlers and metrics.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/loonia/internal/api"
	"github.com/taibuivan/loonia/internal/bootstrap"
	"github.com/taibuivan/loonia/internal/core/catalog"
	"github.com/taibuivan/loonia/internal/platform/config"
	"github.com/taibuivan/loonia/internal/platform/constants"
	"github.com/taibuivan/loonia/internal/platform/metrics"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := bootstrap.NewLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = bootstrap.NewLogger(os.Stdout, slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("backend", cfg.CatalogBackend),
	)

	// Startup deadline so a misconfigured dependency fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3–4. Catalog backend ─────────────────────────────────────────────
	m := metrics.New()

	backend, err := bootstrap.Open(startupCtx, cfg, log, m)
	must(log, err, "open catalog backend")
	defer func() {
		log.Info("closing_catalog_backend")
		backend.Close()
	}()

	// ── 5. Wiring ─────────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(backend.Checks, log)
	catalogHandler := catalog.NewHandler(catalog.NewService(backend.Store, log, m))

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, m, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalogHandler,
	})

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		backend.Close()
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
