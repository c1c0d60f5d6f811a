package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sensorfactory/nexus/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger writes JSON for "json" and text otherwise. Source locations are
// attached only at debug level.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		return slog.New(slog.NewJSONHandler(w, opts)).With("app", "nexus")
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel accepts the slog level names in any case, with offsets such as
// "warn+2". Anything else is info.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
