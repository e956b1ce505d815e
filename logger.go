package vizcanvas

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for vizcanvas and all its sub-packages.
// By default nothing is logged. The logger is also handed to gg so that
// rasterizer diagnostics end up in the same place.
//
// Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: surface rescales, frame scheduling, draw failures
//   - [slog.LevelInfo]: surface acquisition and release, host attachment
//   - [slog.LevelWarn]: host misbehaviour (bad pixel ratio, watcher errors)
//
// Example:
//
//	vizcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
		gg.SetLogger(nil)
	} else {
		gg.SetLogger(l)
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (paint, loop, host/...)
// call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
