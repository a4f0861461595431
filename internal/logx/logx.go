// Package logx holds the process-wide logger shared by every ogkit package.
//
// The root package re-exports Set as ogkit.SetLogger so that sub-packages can
// log without importing the facade (which imports them).
package logx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled reports false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Set installs l as the shared logger. Passing nil restores silent logging.
// Safe for concurrent use.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// L returns the shared logger. It never returns nil.
func L() *slog.Logger {
	return loggerPtr.Load()
}

// Component returns the shared logger tagged with a component attribute.
func Component(name string) *slog.Logger {
	return loggerPtr.Load().With(slog.String("component", name))
}
