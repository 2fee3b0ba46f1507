// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// HomePage is what the storefront landing screen renders.
type HomePage struct {
	Featured   []*entity.Product  `json:"featured"`
	Categories []*entity.Category `json:"categories"`
}

// ProductQuery narrows a storefront product listing.
type ProductQuery struct {
	CategoryID *uuid.UUID `query:"category_id"`
	Search     string     `query:"q"`
	Featured   bool       `query:"featured"`
	Limit      int        `query:"limit"`
	Offset     int        `query:"offset"`
}

// CatalogUsecase serves the read-only storefront catalog. Inactive products are never returned.
type CatalogUsecase interface {
	Home(ctx context.Context) (*HomePage, error)
	ListProducts(ctx context.Context, query ProductQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
