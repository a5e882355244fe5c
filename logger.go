package mobius

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level disabled, so strip
// construction pays nothing for its debug attributes until a logger is set.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

func silentLogger() *slog.Logger { return slog.New(discard{}) }

var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(silentLogger())
}

// SetLogger routes diagnostics from mobius and the plot package to l.
// Nothing is logged until it is called; nil restores silence. It is safe
// to call while strips are being built or rendered.
//
// Debug records carry the strip parameters (R, w, n), the grid steps
// (du, dv) and the summation mode, plus render cell counts. Info records
// name the image files the plot package writes.
//
//	mobius.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	active.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return active.Load()
}
