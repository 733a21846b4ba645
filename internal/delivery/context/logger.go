package context

import (
	"context"
	"log/slog"
)

// KeyLogger is the key for storing the request-scoped logger in context.
const KeyLogger ContextKey = "logger"

// GetLoggerOrDefault returns the logger stored by the request ID middleware,
// or fallback when ctx did not come through an HTTP request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
