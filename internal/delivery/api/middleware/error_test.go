package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "crave/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "domain error", err: errors.Wrap(domainerrors.ErrEmptyCart, "checkout"), wantStatus: domainerrors.ErrEmptyCart.HTTPCode(), wantCode: domainerrors.ErrEmptyCart.ErrorCode()},
		{name: "unknown route", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "ROUTE_NOT_FOUND"},
		{name: "body too large", err: echo.ErrStatusRequestEntityTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "PAYLOAD_TOO_LARGE"},
		{name: "other echo error", err: echo.NewHTTPError(http.StatusTeapot), wantStatus: http.StatusTeapot, wantCode: "HTTP_ERROR"},
		{name: "unexpected", err: errors.New("nil map"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestErrorMiddleware_HeadHasNoBody(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodHead, "/api/v1/catalog/products/x", nil), rec)

	m.HandleHTTPError(domainerrors.ErrProductNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorMiddleware_ClientGone(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), rec)

	m.HandleHTTPError(errors.Wrap(context.Canceled, "list orders"), c)

	assert.Empty(t, rec.Body.String())
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "partial"))

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "partial", rec.Body.String())
}
