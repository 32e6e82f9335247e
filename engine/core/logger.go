package core

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything; Enabled is false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger shared by every engine package.
// By default the engine is silent; pass nil to restore that.
//
// Levels used:
//   - [slog.LevelDebug]: per-frame diagnostics (skipped commands, degenerate input)
//   - [slog.LevelInfo]: lifecycle (backend selected, GL version)
//   - [slog.LevelWarn]: recoverable failures (font table, texture upload)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
