package bezier

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that discards all records. Enabled returns
// false so that callers skip building log attributes altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

// MaxDepth is the default recursion limit of [FindRoots] and [Flatten]. Each
// level halves the parameter interval, so at depth 64 an interval is narrower
// than the spacing of float64 values in [0, 1].
const MaxDepth = 64

// Options specifies optional settings for [FindRootsOpt] and [FlattenOpt].
// The zero value selects the defaults.
type Options struct {
	// The maximum recursion depth. Values <= 0 select [MaxDepth].
	MaxDepth int

	// Logger receives debug records about branches that were cut short by the
	// depth limit or by a degenerate chord. A nil Logger discards them.
	//
	// Example:
	//
	//	opts := bezier.Options{
	//		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	//			Level: slog.LevelDebug,
	//		})),
	//	}
	Logger *slog.Logger
}

func (opts Options) maxDepth() int {
	if opts.MaxDepth <= 0 {
		return MaxDepth
	}
	return opts.MaxDepth
}

func (opts Options) logger() *slog.Logger {
	if opts.Logger == nil {
		return nopLogger
	}
	return opts.Logger
}
