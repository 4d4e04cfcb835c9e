//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"luxora-booking/internal/handler/middleware"
	"luxora-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "15:04:05"})

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/bookings/:code", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	t.Run("generated when absent", func(t *testing.T) {
		r := newLoggedRouter()
		req := httptest.NewRequest(http.MethodGet, "/bookings/LUX123456", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(middleware.RequestIDHeader)
		assert.Regexp(t, `^\d{14}-[0-9a-f]{12}$`, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("client id is echoed", func(t *testing.T) {
		r := newLoggedRouter()
		req := httptest.NewRequest(http.MethodGet, "/bookings/LUX123456", nil)
		req.Header.Set(middleware.RequestIDHeader, "trace-abc-12345")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "trace-abc-12345", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "trace-abc-12345", w.Body.String())
	})

	t.Run("unsafe client id is replaced", func(t *testing.T) {
		r := newLoggedRouter()
		req := httptest.NewRequest(http.MethodGet, "/bookings/LUX123456", nil)
		req.Header.Set(middleware.RequestIDHeader, "bad id\nwith newline")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		id := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEqual(t, "bad id\nwith newline", id)
		assert.Regexp(t, `^\d{14}-[0-9a-f]{12}$`, id)
	})
}
