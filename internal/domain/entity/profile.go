package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a postal address kept on a profile and copied onto orders.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code,omitempty"`
}

// UserProfile is the shopper's contact details, keyed by user id.
type UserProfile struct {
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
