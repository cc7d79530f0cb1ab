package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/triadic/config"
)

// newLogger builds the run logger from the log section. Unknown levels fall
// back to info; config validation rejects them earlier.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
