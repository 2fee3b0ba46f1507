package repository

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when the user never saved a profile.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for user profile persistence.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// Upsert replaces the whole profile, creating it when absent.
	Upsert(ctx context.Context, profile *entity.UserProfile) error
}
