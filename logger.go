// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip attribute construction, which keeps
// per-frame debug logging free when logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger may race with a frame upload on another goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for texfeed and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by texfeed:
//   - [slog.LevelDebug]: per-frame transfer and upload details
//   - [slog.LevelInfo]: native library binding
//   - [slog.LevelWarn]: failed native or GPU uploads
//
// Example:
//
//	texfeed.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (native/, gpu/) call this
// so one SetLogger call configures the whole module.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
