package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AddressJSON is the shape stored in JSON address columns.
type AddressJSON struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code,omitempty"`
}

// UserProfileModel mirrors the 'user_profiles' table, keyed by the user id.
type UserProfileModel struct {
	ID        uuid.UUID                       `gorm:"type:uuid;primaryKey"`
	FullName  string                          `gorm:"type:varchar(255)"`
	Phone     string                          `gorm:"type:varchar(50)"`
	Address   datatypes.JSONType[AddressJSON] `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
