package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileInput is the full set of profile fields. Upserts replace all of them.
type ProfileInput struct {
	FullName string         `json:"full_name"`
	Phone    string         `json:"phone"`
	Address  entity.Address `json:"address"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the stored profile, or an empty one for a user who never saved it.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	UpsertProfile(ctx context.Context, userID uuid.UUID, input *ProfileInput) (*entity.UserProfile, error)
}
