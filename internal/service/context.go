package service

import (
	"context"
	"log/slog"
)

type loggerContextKey struct{}

// ContextWithLogger attaches a request scoped logger that PurchaseTickets uses
// instead of the service logger.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return fallback
	}

	return logger
}
