package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	mocks "crave/internal/mocks/usecase"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mocks.MockAuthUsecase) {
	authUC := mocks.NewMockAuthUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		AuthUC: authUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), authUC
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m, authUC := newTestAuthMiddleware(t)

	identity := &usecase.Identity{UserID: uuid.New(), SessionID: uuid.New(), Roles: entity.Roles{entity.RoleCustomer}}
	authUC.EXPECT().Authenticate(mock.Anything, "good-token").Return(identity, nil)

	c, rec := newAuthContext("Bearer good-token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	userID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, identity.UserID, userID)
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestAuthMiddleware(t)
			c, rec := newAuthContext(tt.header)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_Authenticate_RevokedSession(t *testing.T) {
	m, authUC := newTestAuthMiddleware(t)

	authUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrSessionInvalid)

	c, rec := newAuthContext("Bearer stale")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	m, authUC := newTestAuthMiddleware(t)

	identity := &usecase.Identity{UserID: uuid.New(), SessionID: uuid.New()}
	authUC.EXPECT().RequireAdmin(mock.Anything, identity).Return(domainerrors.ErrAdminAccessDenied)

	c, rec := newAuthContext("")
	SetIdentity(c, identity)

	require.NoError(t, m.RequireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireAdmin_Allowed(t *testing.T) {
	m, authUC := newTestAuthMiddleware(t)

	identity := &usecase.Identity{UserID: uuid.New(), SessionID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
	authUC.EXPECT().RequireAdmin(mock.Anything, identity).Return(nil)

	c, rec := newAuthContext("")
	SetIdentity(c, identity)

	require.NoError(t, m.RequireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireAdmin_NoIdentity(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)
	c, rec := newAuthContext("")

	require.NoError(t, m.RequireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
