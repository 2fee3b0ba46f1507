package postgres

import (
	"context"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	if device.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate device id")
		}
		device.ID = id
	}
	row := deviceRow(device)
	row.IsActive = true

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("device references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	*device = *deviceEntity(row)

	return nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.DeviceModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	return deviceEntity(&row), nil
}

func (repo *deviceRepository) ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active")
	}

	var rows []*model.DeviceModel
	if err := query.Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, len(rows))
	for i, row := range rows {
		devices[i] = deviceEntity(row)
	}

	return devices, nil
}

func (repo *deviceRepository) SetToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"fcm_token": token, "is_active": true})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set device token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) ReleaseToken(ctx context.Context, token string, keep uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("fcm_token = ? AND id <> ? AND is_active", token, keep).
		Update("is_active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to release device token")
	}

	return result.RowsAffected, nil
}

func (repo *deviceRepository) Deactivate(ctx context.Context, ids ...uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id IN ? AND is_active", ids).
		Update("is_active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate devices")
	}

	return result.RowsAffected, nil
}

func deviceRow(d *entity.UserDevice) *model.DeviceModel {
	return &model.DeviceModel{
		ID:        d.ID,
		UserID:    d.UserID,
		DeviceID:  d.DeviceID,
		Platform:  d.Platform,
		FCMToken:  d.FCMToken,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func deviceEntity(row *model.DeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        row.ID,
		UserID:    row.UserID,
		DeviceID:  row.DeviceID,
		Platform:  row.Platform,
		FCMToken:  row.FCMToken,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
