// Package log provides context-scoped structured logging over log/slog.
// Callers attach a logger to a context with With; the package-level
// helpers retrieve it, falling back to slog.Default.
package log

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// With returns a context carrying l.
func With(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// From returns the logger attached to ctx, or slog.Default.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	From(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	From(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	From(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	From(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
