package middleware

import (
	"log/slog"
	"strings"

	"crave/internal/delivery/api/response"
	deliverycontext "crave/internal/delivery/context"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyIdentity = "identity"
	bearer      = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware authenticates bearer tokens against the session store.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Authenticate resolves the access token into an Identity stored on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, bearer)
		if !found || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.authUC.Authenticate(ctx, token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		SetIdentity(c, identity)

		ctx = deliverycontext.WithLogAttrs(ctx, m.logger, slog.String("user_id", identity.UserID.String()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin lets only admins through. It must be used after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
		}

		if err := m.authUC.RequireAdmin(c.Request().Context(), identity); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

// SetIdentity stores the authenticated caller on the request.
func SetIdentity(c echo.Context, identity *usecase.Identity) {
	c.Set(keyIdentity, identity)
}

// GetIdentity returns the caller set by Authenticate.
func GetIdentity(c echo.Context) (*usecase.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(*usecase.Identity)

	return identity, ok && identity != nil
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}

	return identity.UserID, true
}
