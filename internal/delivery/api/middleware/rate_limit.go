package middleware

import (
	"net/http"
	"time"

	"crave/config"
	"crave/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultSignInRate  = 1
	defaultSignInBurst = 5
	limiterExpiry      = 3 * time.Minute
)

// NewSignInRateLimiter throttles credential endpoints per client IP.
func NewSignInRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limit := rate.Limit(defaultSignInRate)
	burst := defaultSignInBurst
	if cfg.RateLimit != nil {
		if cfg.RateLimit.RequestsPerSecond > 0 {
			limit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		}
		if cfg.RateLimit.Burst > 0 {
			burst = cfg.RateLimit.Burst
		}
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     burst,
		ExpiresIn: limiterExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Could not identify client", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many attempts, please wait and retry", nil)
		},
	})
}
