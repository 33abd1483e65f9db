package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/wire"

	"github.com/cfsweep/cfsweep-cli/internal/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates the process logger. The text handler on stderr is
// the machine-parsable event stream of the run; renderers own the
// human-facing output on stdout.
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if val := strings.ToLower(os.Getenv("CFSWEEP_LOG_LEVEL")); val != "" {
		switch val {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			// unknown value, keep default
		}
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Drop the timestamp for cleaner CI output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
