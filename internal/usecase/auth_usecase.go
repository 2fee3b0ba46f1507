package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// Credentials is an email and password pair.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Identity is the authenticated caller behind a request.
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	Roles     entity.Roles
}

// IsAdmin reports whether the identity was granted the admin role at sign-in.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Roles.Contains(entity.RoleAdmin)
}

// AuthUsecase defines account and session management.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *Credentials) (*entity.User, error)
	SignIn(ctx context.Context, input *Credentials) (*entity.AuthSession, error)

	// AdminSignIn signs in and refuses, signing the session straight back out, when the user is not an admin.
	AdminSignIn(ctx context.Context, input *Credentials) (*entity.AuthSession, error)

	// SignOut revokes the session. Signing out twice is not an error.
	SignOut(ctx context.Context, sessionID uuid.UUID) error

	// Refresh rotates a refresh token into a new session.
	Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error)

	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Authenticate validates an access token against the session store.
	Authenticate(ctx context.Context, accessToken string) (*Identity, error)

	// RequireAdmin checks the admin table for the identity. A denied session is
	// signed out after the configured delay.
	RequireAdmin(ctx context.Context, identity *Identity) error

	// PurgeExpiredSessions deletes sessions that can no longer authenticate.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
