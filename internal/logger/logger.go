// Package logger configures the process-wide slog logger.
//
// Launcher logs go to stderr so they interleave cleanly with the access and
// error logs that gunicorn writes once the handoff happens.
package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLogLevel converts a LOG_LEVEL string to a slog.Level.
// Unknown values fall back to info. "warning" and "critical" are accepted
// because the same variable is passed to gunicorn's --log-level.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "critical":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger builds the launcher logger and installs it as the slog default.
// Debug mode gets the colorized tint handler; production gets JSON so the
// platform's log collector can parse startup lines.
func InitLogger(level slog.Level, debug bool) *slog.Logger {
	var handler slog.Handler
	if debug {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}
