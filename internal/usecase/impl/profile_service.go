package impl

import (
	"context"
	"log/slog"
	"strings"

	"crave/internal/domain/entity"
	"crave/internal/domain/repository"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile returns an empty profile for users who never saved one.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	srv.logger.Debug("Getting user profile", slog.String("userID", userID.String()))

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return &entity.UserProfile{UserID: userID}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpsertProfile replaces every profile field. Callers merge partial edits first.
func (srv *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, input *usecase.ProfileInput) (*entity.UserProfile, error) {
	if input == nil {
		input = &usecase.ProfileInput{}
	}

	profile := &entity.UserProfile{
		UserID:   userID,
		FullName: strings.TrimSpace(input.FullName),
		Phone:    strings.TrimSpace(input.Phone),
		Address:  input.Address,
	}
	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to upsert profile")
	}

	srv.logger.Debug("Profile saved", slog.String("userID", userID.String()))

	return profile, nil
}
