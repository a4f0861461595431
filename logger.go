package ogkit

import (
	"log/slog"

	"github.com/dmrcv/ogkit/internal/logx"
)

// SetLogger configures the logger for ogkit and all its sub-packages.
// By default, ogkit produces no log output. Pass nil to restore silence.
//
// SetLogger is safe for concurrent use.
//
// Log levels used by ogkit:
//   - [slog.LevelDebug]: cache hits and misses, render statistics
//   - [slog.LevelInfo]: font loading, content loading, monogram color
//   - [slog.LevelWarn]: cache store failures
//   - [slog.LevelError]: render failures reported by the HTTP server
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger used by ogkit. It never returns nil.
func Logger() *slog.Logger {
	return logx.L()
}
