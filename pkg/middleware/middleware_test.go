package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trading-journal/config"
	"trading-journal/pkg/logger"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequireUser(t *testing.T) {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, UserID(c))
	}, RequireUser("X-User-ID"))

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "missing", header: "", wantCode: http.StatusUnauthorized},
		{name: "blank", header: "   ", wantCode: http.StatusUnauthorized},
		{name: "present", header: " trader-1 ", wantCode: http.StatusOK, wantBody: "trader-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRateLimiterDeniesAfterBurst(t *testing.T) {
	e := echo.New()
	e.Use(NewRateLimiterMiddleware(config.API{UserHeader: "X-User-ID", RateLimitPerSec: 0.001, RateLimitBurst: 2}))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-User-ID", "burst-user")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRequestLoggerTagsContextLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := &logger.Logger{Logger: zap.New(core)}

	e := echo.New()
	e.Use(echoMiddleware.RequestID())
	e.GET("/trades", func(c echo.Context) error {
		base.InfoContext(c.Request().Context(), "listing trades")
		return c.NoContent(http.StatusNoContent)
	}, RequireUser("X-User-ID"), RequestLogger(base))

	req := httptest.NewRequest(http.MethodGet, "/trades", nil)
	req.Header.Set("X-User-ID", "trader-9")
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "trader-9", fields["user_id"])
	assert.Equal(t, "req-123", fields["request_id"])
}
