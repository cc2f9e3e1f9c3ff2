package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"audio2mp4/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Writer receives every record; nil means stderr so stdout stays
	// reserved for conversion status lines.
	Writer io.Writer
	RunID  string
}

// New constructs a slog logger. Debug level also records the caller.
func New(opts Options) (*slog.Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := parseLevel(opts.Level)

	var handler slog.Handler
	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "", "console":
		handler = newConsoleHandler(w, level)
	case "json":
		handler = newJSONHandler(w, level)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	logger := slog.New(handler)
	if runID := strings.TrimSpace(opts.RunID); runID != "" {
		logger = logger.With(String(FieldRunID, runID))
	}
	return logger, nil
}

// NewFromConfig creates a logger from the [logging] section of cfg.
func NewFromConfig(cfg *config.Config, w io.Writer, runID string) (*slog.Logger, error) {
	opts := Options{Writer: w, RunID: runID}
	if cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
	}
	return New(opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
