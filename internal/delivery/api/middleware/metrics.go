package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestRecorder observes HTTP requests.
type RequestRecorder interface {
	RequestStarted(method, route string) func(status int)
}

// MetricsMiddleware records request counts and latency by route template.
type MetricsMiddleware struct {
	recorder RequestRecorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder RequestRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle wraps the request with in-flight and duration tracking.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		done := m.recorder.RequestStarted(c.Request().Method, route)

		err := next(c)

		status := c.Response().Status
		var httpErr *echo.HTTPError
		if err != nil && !c.Response().Committed {
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else {
				status = http.StatusInternalServerError
			}
		}
		done(status)

		return err
	}
}
