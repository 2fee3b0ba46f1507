package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	devices repository.DeviceRepository
	logger  *slog.Logger
}

func NewDeviceService(devices repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		devices: devices,
		logger:  logger,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, reg *usecase.DeviceRegistration) (*entity.UserDevice, error) {
	if reg == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device registration is empty")
	}
	device := &entity.UserDevice{
		UserID:   userID,
		DeviceID: strings.TrimSpace(reg.DeviceID),
		Platform: strings.ToLower(strings.TrimSpace(reg.Platform)),
		FCMToken: strings.TrimSpace(reg.FCMToken),
	}
	if device.DeviceID == "" || device.FCMToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}

	if err := s.devices.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}
	s.releaseToken(ctx, device)

	return device, nil
}

func (s *deviceService) RefreshToken(ctx context.Context, userID, deviceID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}
	if device.FCMToken == token && device.IsActive {
		return nil
	}

	if err := s.devices.SetToken(ctx, deviceID, token); err != nil {
		return errors.Wrap(err, "failed to refresh device token")
	}
	device.FCMToken = token
	s.releaseToken(ctx, device)

	return nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.devices.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// DeactivateDevice keeps the row; registering the same device_id turns it back on.
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if _, err := s.devices.Deactivate(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

// releaseToken is best effort: the caller's device is already stored, and a
// stale holder is also pruned once FCM reports the token as invalid for it.
func (s *deviceService) releaseToken(ctx context.Context, device *entity.UserDevice) {
	released, err := s.devices.ReleaseToken(ctx, device.FCMToken, device.ID)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	if err != nil {
		logger.Warn("Failed to release token from other devices",
			slog.String("deviceID", device.ID.String()),
			slog.Any("error", err),
		)

		return
	}
	if released > 0 {
		logger.Info("Token moved from other devices",
			slog.String("deviceID", device.ID.String()),
			slog.Int64("released", released),
		)
	}
}

// ownedDevice reports other users' devices as not found.
func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.devices.FindByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound.WrapMessage("device lookup")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}
	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceNotFound.WrapMessage("device belongs to another user")
	}

	return device, nil
}
