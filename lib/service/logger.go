// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"log/slog"
	"os"
)

// NewLogger creates the standard secretdev service logger: a JSON
// handler writing to stderr at the given level. It also sets the
// default slog logger so that third-party code using slog.Info etc.
// gets the same handler.
func NewLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a config-file or flag level string ("debug",
// "info", "warn", "error") into a slog.Level. Unknown strings produce
// an error naming the input.
func ParseLevel(text string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return 0, err
	}
	return level, nil
}
