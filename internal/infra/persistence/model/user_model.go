package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AdminUserModel mirrors the 'admin_users' table. ID references users.id.
type AdminUserModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsAdmin bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "admin_users"
}

// SessionModel mirrors the 'sessions' table.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	RevokedAt *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
