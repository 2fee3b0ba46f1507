package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is a row of user_devices. A user registers each device_id once;
// re-registering overwrites the token and platform.
type DeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:user_devices_user_id_device_id_key,priority:1"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:user_devices_user_id_device_id_key,priority:2"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	FCMToken  string    `gorm:"column:fcm_token;type:varchar(4096);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DeviceModel) TableName() string {
	return "user_devices"
}
