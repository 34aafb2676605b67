package utils

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

// NewLogger returns a slog logger writing to stderr, as text for local
// development and JSON otherwise.
func NewLogger(format string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{})
	default:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{})
	}
	return slog.New(handler)
}

// LoggerFromContext never returns nil: callers get the default logger when
// none was stored.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctxWithLogger := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctxWithLogger)
	}
}
