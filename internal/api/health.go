// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/loonia/internal/platform/constants"
	"github.com/taibuivan/loonia/internal/platform/respond"
)

const readinessTimeout = 3 * time.Second

// Check is one named dependency probe for the /ready endpoint.
type Check struct {
	Name  string
	Probe func(context.Context) error
}

type healthHandler struct {
	checks []Check
	logger *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(checks []Check, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{checks: checks, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness handles GET /ready (Readiness probe).
//
// Probes run in parallel under one deadline. A failing probe never cancels
// the others, so the response always reports every dependency.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), readinessTimeout)
	defer cancel()

	results := make([]checkResult, len(handler.checks))

	var group errgroup.Group
	for i, check := range handler.checks {
		group.Go(func() error {
			result := checkResult{Name: check.Name, IsOK: true}
			if err := check.Probe(ctx); err != nil {
				result.IsOK = false
				result.Error = err.Error()
				handler.logger.ErrorContext(ctx, "readiness_check_failed",
					slog.String("dependency", check.Name),
					slog.Any("error", err),
				)
			}
			results[i] = result
			return nil
		})
	}
	_ = group.Wait()

	responseStatus := "ready"
	httpStatus := http.StatusOK
	for _, result := range results {
		if !result.IsOK {
			responseStatus = "degraded"
			httpStatus = http.StatusServiceUnavailable
			break
		}
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
	}})
}
