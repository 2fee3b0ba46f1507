package handler

import (
	"log/slog"
	"net/http"
	"time"

	"crave/internal/delivery/api/middleware"
	"crave/internal/delivery/api/response"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for account and session handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RefreshRequest represents the request body for rotating a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// SignUp creates a customer account
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req usecase.Credentials
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.authUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Roles:     []string{},
		CreatedAt: user.CreatedAt,
	})
}

// SignIn exchanges credentials for a token pair
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req usecase.Credentials
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.authUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// AdminSignIn signs in through the admin console
func (h *AuthHandler) AdminSignIn(c echo.Context) error {
	var req usecase.Credentials
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.authUC.AdminSignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Refresh rotates a refresh token into a new session
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// SignOut revokes the caller's session
func (h *AuthHandler) SignOut(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session in token")
	}

	if err := h.authUC.SignOut(c.Request().Context(), identity.SessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Me returns the signed-in account
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session in token")
	}

	user, err := h.authUC.CurrentUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Roles:     identity.Roles.Strings(),
		CreatedAt: user.CreatedAt,
	})
}
