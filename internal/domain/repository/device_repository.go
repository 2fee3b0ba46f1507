package repository

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores push targets. A device is identified by the pair
// (user_id, device_id); the FCM token is the part that changes.
type DeviceRepository interface {
	// Upsert registers the device or, when the user already has the device_id,
	// replaces its token and platform and reactivates it. The stored row is
	// read back into device.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// ListByUser returns newest first. activeOnly drops deactivated devices.
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error)

	// SetToken replaces the token of one device and reactivates it.
	SetToken(ctx context.Context, id uuid.UUID, token string) error

	// ReleaseToken deactivates every other device holding token, so a phone
	// that switched accounts stops receiving the previous owner's orders.
	ReleaseToken(ctx context.Context, token string, keep uuid.UUID) (int64, error)

	// Deactivate turns off the given devices and reports how many changed.
	Deactivate(ctx context.Context, ids ...uuid.UUID) (int64, error)
}
