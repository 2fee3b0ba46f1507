package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	domainerrors "crave/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return cfg
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		want    string
	}{
		{name: "keeps inbound", inbound: "upstream-42", want: "upstream-42"},
		{name: "generates when missing", want: "generated"},
		{name: "replaces malformed", inbound: "bad id\n", want: "generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
			m.newID = func() string { return "generated" }

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.inbound)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.want, deliverycontext.GetRequestID(c))
			assert.Equal(t, tt.want, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}

func TestLoggerMiddleware_LogsPredictedErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), newTestConfig(false))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/orders/x", nil), httptest.NewRecorder())
	c.SetPath("/api/v1/orders/:id")

	err := m.Handle(func(echo.Context) error {
		return domainerrors.ErrOrderNotFound
	})(c)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "status=404")
	assert.Contains(t, buf.String(), "route=/api/v1/orders/:id")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggerMiddleware_SkipsQuietPaths(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		wantLog bool
	}{
		{name: "quiet outside debug"},
		{name: "logged in debug", debug: true, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), newTestConfig(tt.debug))
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

			require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestResponseStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed), want: http.StatusMethodNotAllowed},
		{name: "wrapped app error", err: errors.Wrap(domainerrors.ErrSessionInvalid, "auth"), want: http.StatusUnauthorized},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

			assert.Equal(t, tt.want, responseStatus(c, tt.err))
		})
	}
}

func TestResponseStatus_Committed(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, c.NoContent(http.StatusAccepted))

	assert.Equal(t, http.StatusAccepted, responseStatus(c, nil))
	assert.Equal(t, http.StatusAccepted, responseStatus(c, errors.New("late failure")))
}
