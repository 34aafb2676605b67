package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/consentvault/consentvault-backend/utils"
)

func newLoggingTestRouter(out *bytes.Buffer, options ...LoggerOption) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(out, nil))

	r := gin.New()
	r.Use(NewLogging(logger, options...))
	r.GET("/ping", func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			utils.StoreRequestFingerprintInContext(c.Request.Context(), "abcd1234"))
		c.String(http.StatusTeapot, "pong")
	})
	return r
}

func TestNewLogging(t *testing.T) {
	t.Run("logs status, path and request fingerprint", func(t *testing.T) {
		var out bytes.Buffer
		r := newLoggingTestRouter(&out)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		line := out.String()
		assert.Contains(t, line, "GET /ping")
		assert.Contains(t, line, "status=418")
		assert.Contains(t, line, "method=GET")
		assert.Contains(t, line, "request_fingerprint=abcd1234")
		assert.Contains(t, line, "level=WARN")
	})

	t.Run("ignored paths produce no output", func(t *testing.T) {
		var out bytes.Buffer
		r := newLoggingTestRouter(&out, WithIgnorePath([]string{"/ping"}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Empty(t, out.String())
	})
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusOK))
	assert.Equal(t, slog.LevelWarn, levelForStatus(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, levelForStatus(http.StatusInternalServerError))
}
