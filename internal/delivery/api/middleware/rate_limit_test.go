package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crave/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSignInRateLimiter_BurstThenDeny(t *testing.T) {
	e := echo.New()
	limiter := NewSignInRateLimiter(&config.Config{RateLimit: &config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}})
	e.POST("/auth/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, limiter)

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = ip + ":40000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))

	// Buckets are per client
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))
}
