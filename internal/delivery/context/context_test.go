package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "uuid", id: "9b2f6c1e-3a4d-4f5e-8a7b-1c2d3e4f5a6b", want: "9b2f6c1e-3a4d-4f5e-8a7b-1c2d3e4f5a6b"},
		{name: "trace style", id: "trace_01:span.7", want: "trace_01:span.7"},
		{name: "empty", id: ""},
		{name: "header injection", id: "abc\r\nSet-Cookie: x"},
		{name: "spaces", id: "a b"},
		{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRequestID(tt.id))
		})
	}
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
	c := echo.New().NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "from-ctx", GetRequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))
}

func TestWithLogAttrs(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogAttrs(context.Background(), fallback, slog.String("user_id", "u-1"))
	ctx = WithLogAttrs(ctx, fallback, slog.String("order_number", "ORD-9"))
	GetLoggerOrDefault(ctx, fallback).Info("checkout")

	assert.Contains(t, buf.String(), "user_id=u-1")
	assert.Contains(t, buf.String(), "order_number=ORD-9")
}

func TestGetLoggerOrDefault_Missing(t *testing.T) {
	fallback := slog.Default()

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
