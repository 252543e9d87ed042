// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/loonia/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Context cancellation is returned untouched so callers can tell an aborted
// request from a failing backend.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Caller gave up
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	// 2. Not Found mapping for both backends
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Product")
	}

	// 3. Everything else becomes an Internal Server Error
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
