package postgres

import (
	"context"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// Upsert writes the whole profile. A concurrent writer simply loses to the later one.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"full_name", "phone", "address", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	*profile = *toProfileDomain(profileM)

	return nil
}

func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	addr := data.Address.Data()

	return &entity.UserProfile{
		UserID:   data.ID,
		FullName: data.FullName,
		Phone:    data.Phone,
		Address: entity.Address{
			Street:     addr.Street,
			City:       addr.City,
			State:      addr.State,
			Country:    addr.Country,
			PostalCode: addr.PostalCode,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		ID:       data.UserID,
		FullName: data.FullName,
		Phone:    data.Phone,
		Address: datatypes.NewJSONType(model.AddressJSON{
			Street:     data.Address.Street,
			City:       data.Address.City,
			State:      data.Address.State,
			Country:    data.Address.Country,
			PostalCode: data.Address.PostalCode,
		}),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
