package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/utils"
)

type loggingConfig struct {
	logger     *slog.Logger
	ignorePath []string
}

type LoggerOption func(*loggingConfig)

func WithIgnorePath(s []string) LoggerOption {
	return func(c *loggingConfig) {
		c.ignorePath = s
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// NewLogging logs one line per request after it completed, carrying the
// request fingerprint when one was computed so log lines can be joined with
// the audit entries the request produced.
func NewLogging(logger *slog.Logger, options ...LoggerOption) gin.HandlerFunc {
	l := &loggingConfig{logger: logger}
	for _, option := range options {
		option(l)
	}

	ignore := make(map[string]struct{}, len(l.ignorePath))
	for _, path := range l.ignorePath {
		ignore[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := ignore[c.Request.URL.Path]; ok {
			return
		}

		path := c.Request.URL.Path
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		dataLength := max(c.Writer.Size(), 0)

		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("latency", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("data_length", dataLength),
			slog.String("user_agent", c.Request.UserAgent()),
		}
		// The auth and fingerprint middlewares swap the request, so read the
		// final context, not the one this middleware started with.
		if fingerprint := utils.RequestFingerprintFromCtx(c.Request.Context()); fingerprint != "" {
			attributes = append(attributes, slog.String("request_fingerprint", fingerprint))
		}
		if c.Errors != nil {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}

		l.logger.LogAttrs(c.Request.Context(), levelForStatus(status),
			fmt.Sprintf("%s %s", c.Request.Method, path), attributes...)
	}
}
