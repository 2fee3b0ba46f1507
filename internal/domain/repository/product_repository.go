// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces every mutable column of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete hard-deletes a product. Cart lines pointing at it cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a product regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the products with the given ids; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List returns products matching the filter, newest first.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// CountActiveByCategory counts active products referencing a category.
	CountActiveByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// List returns categories newest first; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*entity.Category, error)
}
