package config

import (
	"io"
	"log/slog"
)

// NewLogger returns a slog.Logger for the configured environment.
// Production uses the JSON handler; otherwise the text handler.
// LogLevel may be: debug, info, warn, error (default: info).
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Environment == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
