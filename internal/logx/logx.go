// Package logx builds the structured logger shared by the CLI and the tree.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/agiangrant/boxtree/internal/config"
)

// ParseLevel parses debug, info, warn or error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("failed to parse log level: %w", err)
	}
	return l, nil
}

// LevelFromFlags returns the level for the CLI's -v and -q flags. debug wins
// over quiet; with neither, fallback is returned.
func LevelFromFlags(debug, quiet bool, fallback slog.Level) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	}
	return fallback
}

// New returns a logger writing to w in the configured format at level.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// FromConfig builds the logger described by cfg. The CLI's -v and -q flags
// override the configured level.
func FromConfig(w io.Writer, cfg config.LogConfig, verbose, quiet bool) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return New(w, cfg.Format, LevelFromFlags(verbose, quiet, level)), nil
}
