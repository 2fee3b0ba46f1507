package repository

import (
	"context"
	"time"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrSessionNotFound is returned when a session id is unknown.
	ErrSessionNotFound = errors.New("session not found")
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdatePasswordHash replaces the stored hash. A missing user is ErrUserNotFound.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

// AdminRepository reads the admin gate table.
type AdminRepository interface {
	// IsAdmin reports admin_users.is_admin for the user; a missing row is false.
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// SessionStore keeps the server-side state behind issued tokens.
type SessionStore interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Revoke marks a session revoked. Revoking twice is not an error.
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error

	// DeleteExpired removes sessions that expired before the cutoff.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
