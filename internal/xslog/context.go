package xslog

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

var discard = slog.New(slog.DiscardHandler)

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx. Without one it discards:
// the terminal belongs to the UI, so nothing may fall back to stderr.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}

func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
