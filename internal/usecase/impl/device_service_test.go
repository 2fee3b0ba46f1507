package impl

import (
	"context"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	mockRepo "crave/internal/mocks/repository"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	tests := []struct {
		name       string
		releaseErr error
	}{
		{name: "token taken over from other accounts"},
		{name: "release failure does not fail registration", releaseErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deviceRepo := mockRepo.NewMockDeviceRepository(t)
			srv := NewDeviceService(deviceRepo, newDiscardLogger())

			ctx := context.Background()
			userID := uuid.New()
			storedID := uuid.New()
			deviceRepo.EXPECT().
				Upsert(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
					return d.UserID == userID && d.DeviceID == "pixel-8" && d.Platform == "android" && d.FCMToken == "tok"
				})).
				RunAndReturn(func(_ context.Context, d *entity.UserDevice) error {
					d.ID = storedID
					d.IsActive = true

					return nil
				})
			deviceRepo.EXPECT().ReleaseToken(ctx, "tok", storedID).Return(1, tt.releaseErr)

			device, err := srv.RegisterDevice(ctx, userID, &usecase.DeviceRegistration{
				DeviceID: " pixel-8 ",
				Platform: "Android",
				FCMToken: "tok",
			})

			require.NoError(t, err)
			assert.Equal(t, storedID, device.ID)
			assert.True(t, device.IsActive)
		})
	}
}

func TestDeviceService_RegisterDevice_BlankFields(t *testing.T) {
	srv := NewDeviceService(mockRepo.NewMockDeviceRepository(t), newDiscardLogger())

	_, err := srv.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceRegistration{DeviceID: "pixel-8", FCMToken: "  "})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_RefreshToken(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		stored  *entity.UserDevice
		findErr error
		wantErr error
		expect  func(*mockRepo.MockDeviceRepository, uuid.UUID)
	}{
		{
			name:   "new token",
			stored: &entity.UserDevice{UserID: userID, FCMToken: "old", IsActive: true},
			expect: func(repo *mockRepo.MockDeviceRepository, id uuid.UUID) {
				repo.EXPECT().SetToken(mock.Anything, id, "new").Return(nil)
				repo.EXPECT().ReleaseToken(mock.Anything, "new", id).Return(0, nil)
			},
		},
		{
			name:   "same token on an active device is a no-op",
			stored: &entity.UserDevice{UserID: userID, FCMToken: "new", IsActive: true},
		},
		{
			name:    "other user's device",
			stored:  &entity.UserDevice{UserID: uuid.New(), FCMToken: "old"},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name:    "unknown device",
			findErr: repository.ErrDeviceNotFound,
			wantErr: domainerrors.ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deviceRepo := mockRepo.NewMockDeviceRepository(t)
			srv := NewDeviceService(deviceRepo, newDiscardLogger())

			deviceID := uuid.New()
			if tt.stored != nil {
				tt.stored.ID = deviceID
			}
			deviceRepo.EXPECT().FindByID(mock.Anything, deviceID).Return(tt.stored, tt.findErr)
			if tt.expect != nil {
				tt.expect(deviceRepo, deviceID)
			}

			err := srv.RefreshToken(context.Background(), userID, deviceID, " new ")

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDeviceService_ListDevices_ActiveOnly(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	srv := NewDeviceService(deviceRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID, IsActive: true}}
	deviceRepo.EXPECT().ListByUser(ctx, userID, true).Return(devices, nil)

	got, err := srv.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	srv := NewDeviceService(deviceRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID}
	deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
	deviceRepo.EXPECT().Deactivate(ctx, device.ID).Return(1, nil)

	assert.NoError(t, srv.DeactivateDevice(ctx, userID, device.ID))
}

func TestDeviceService_DeactivateDevice_OtherUsersDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	srv := NewDeviceService(deviceRepo, newDiscardLogger())

	ctx := context.Background()
	device := &entity.UserDevice{ID: uuid.New(), UserID: uuid.New()}
	deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

	err := srv.DeactivateDevice(ctx, uuid.New(), device.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}
