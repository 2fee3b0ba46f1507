package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	requests []recordedRequest
}

func (r *fakeRecorder) RequestStarted(method, route string) func(status int) {
	return func(status int) {
		r.requests = append(r.requests, recordedRequest{method: method, route: route, status: status})
	}
}

func TestMetricsMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name       string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:       "written response",
			handler:    func(c echo.Context) error { return c.NoContent(http.StatusCreated) },
			wantStatus: http.StatusCreated,
		},
		{
			name:       "echo error",
			handler:    func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unhandled error",
			handler:    func(echo.Context) error { return errors.New("boom") },
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{}
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", nil), httptest.NewRecorder())
			c.SetPath("/api/v1/cart/items")

			_ = NewMetricsMiddleware(recorder).Handle(tt.handler)(c)

			assert.Equal(t, []recordedRequest{{method: http.MethodPost, route: "/api/v1/cart/items", status: tt.wantStatus}}, recorder.requests)
		})
	}
}
