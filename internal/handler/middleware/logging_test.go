//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentafleet/internal/handler/middleware"
	"rentafleet/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logConfig() config.LogConfig {
	return config.LogConfig{
		Level:          "info",
		TimeZone:       "America/Panama",
		TimeFormat:     "2006-01-02 15:04:05.000",
		TimeZoneOffset: -5 * 60 * 60,
	}
}

func TestLoggingMiddlewareUsesInjectedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger, logConfig()))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	out := buf.String()
	assert.Contains(t, out, "Request started")
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, `"path":"/ping"`)
}

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var requestID string
	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger, logConfig()))
	engine.GET("/ping", func(c *gin.Context) {
		requestID = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), requestID)
}
