package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item.
type Product struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	StockQuantity  int               `json:"stock_quantity"`
	CategoryID     *uuid.UUID        `json:"category_id,omitempty"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	IsFeatured     bool              `json:"is_featured"`
	IsActive       bool              `json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Category groups products for browsing.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductFilter narrows a catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	CategoryID   *uuid.UUID
	Search       string // case-insensitive substring match on name
	FeaturedOnly bool
	// IncludeInactive is only set by the admin console.
	IncludeInactive bool
	Limit           int
	Offset          int
}
