// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bootstrap

import (
	"io"
	"log/slog"

	"github.com/taibuivan/loonia/internal/platform/constants"
)

// NewLogger returns the JSON logger used by every binary, tagged with the app name.
func NewLogger(writer io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String(constants.FieldApp, constants.AppName))
}
