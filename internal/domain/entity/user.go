// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account known to the auth provider.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier, unique across accounts.
	PasswordHash string    // bcrypt hash, never serialized.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdminUser marks a user as allowed into the admin console.
// A missing row is treated exactly like IsAdmin == false.
type AdminUser struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Session is the server-side record behind an issued token pair.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Active reports whether the session can still authenticate requests at now.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// AuthSession is what a successful sign-in hands back to the client.
type AuthSession struct {
	SessionID    uuid.UUID `json:"session_id"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	Roles        []string  `json:"roles"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
