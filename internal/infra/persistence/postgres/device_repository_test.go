package postgres

import (
	"context"
	"testing"
	"time"

	"crave/internal/domain/entity"
	"crave/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_Upsert_ReusesDeviceID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	existingID := uuid.New()
	userID := uuid.New()
	registeredAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "user_devices" .* ON CONFLICT \("user_id","device_id"\) DO UPDATE SET "fcm_token"="excluded"."fcm_token",.*RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "device_id", "platform", "fcm_token", "is_active", "created_at", "updated_at"}).
			AddRow(existingID, userID, "pixel-8", "android", "new-token", true, registeredAt, time.Now()))

	device := &entity.UserDevice{UserID: userID, DeviceID: "pixel-8", Platform: "android", FCMToken: "new-token"}
	require.NoError(t, repo.Upsert(context.Background(), device))

	assert.Equal(t, existingID, device.ID)
	assert.True(t, device.IsActive)
	assert.Equal(t, registeredAt, device.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_ListByUser_ActiveOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "user_devices" WHERE user_id = \$1 AND is_active ORDER BY updated_at DESC`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "fcm_token", "is_active"}).
			AddRow(uuid.New(), userID, "token-a", true))

	devices, err := repo.ListByUser(context.Background(), userID, true)

	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "token-a", devices[0].FCMToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_SetToken_UnknownDevice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`UPDATE "user_devices" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetToken(context.Background(), uuid.New(), "token")

	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_ReleaseToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	keep := uuid.New()
	mock.ExpectExec(`UPDATE "user_devices" SET "is_active"=\$1,"updated_at"=\$2 WHERE fcm_token = \$3 AND id <> \$4 AND is_active`).
		WithArgs(false, sqlmock.AnyArg(), "shared-token", keep).
		WillReturnResult(sqlmock.NewResult(0, 2))

	released, err := repo.ReleaseToken(context.Background(), "shared-token", keep)

	require.NoError(t, err)
	assert.Equal(t, int64(2), released)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_Deactivate(t *testing.T) {
	t.Run("no ids skips the query", func(t *testing.T) {
		db, mock := newMockDB(t)

		changed, err := NewDeviceRepository(db).Deactivate(context.Background())

		require.NoError(t, err)
		assert.Zero(t, changed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("batch", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "user_devices" SET .* WHERE id IN \(\$3,\$4\) AND is_active`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		changed, err := NewDeviceRepository(db).Deactivate(context.Background(), uuid.New(), uuid.New())

		require.NoError(t, err)
		assert.Equal(t, int64(1), changed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
