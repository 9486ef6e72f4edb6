//go:build unit

package middleware_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"seckill-guard/internal/handler/middleware"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/pkg/jwt"
	"seckill-guard/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(logger *middleware.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(logger.GetSlogLogger()))
	return engine
}

func testLogger() *middleware.Logger {
	return middleware.NewLogger(config.NewTestConfig().Log)
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	auth := middleware.NewAuthMiddleware(svc)

	engine := newEngine(testLogger())
	engine.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})

	valid, err := svc.GenerateToken(42)
	require.NoError(t, err)
	expired, err := jwt.NewService("secret", -time.Minute).GenerateToken(42)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, valid)
		var body map[string]int64
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, int64(42), body["user_id"])
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, expired)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("tampered token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/me", nil, valid+"x")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRateLimit(t *testing.T) {
	engine := newEngine(testLogger())
	engine.GET("/limited", middleware.RateLimit(config.RateLimitConfig{RPS: 0.001, Burst: 2}), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for range 2 {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/limited", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/limited", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine(testLogger())
	engine.GET("/panic", func(_ *gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestRequestIDIsPropagated(t *testing.T) {
	engine := newEngine(testLogger())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "req-123")
	rec := stdhttptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}
