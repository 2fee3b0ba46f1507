package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration is what a client sends when it obtains or refreshes its FCM token.
type DeviceRegistration struct {
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}

type DeviceUsecase interface {
	// RegisterDevice is idempotent per device_id and takes the token over from
	// any other account that still holds it.
	RegisterDevice(ctx context.Context, userID uuid.UUID, reg *DeviceRegistration) (*entity.UserDevice, error)
	RefreshToken(ctx context.Context, userID, deviceID uuid.UUID, token string) error
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
