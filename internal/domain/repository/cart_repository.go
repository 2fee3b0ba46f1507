package repository

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartItemNotFound is returned when a cart line does not exist for the user.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the interface for cart line persistence.
type CartRepository interface {
	// FindByUserAndProduct returns the user's line for a product, or ErrCartItemNotFound.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)

	// FindByID returns a line owned by the user, or ErrCartItemNotFound.
	FindByID(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error)

	// Upsert writes the line keyed on (user_id, product_id), replacing the quantity on conflict.
	Upsert(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of a line owned by the user.
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error

	// Delete removes a line owned by the user. Missing lines are not an error.
	Delete(ctx context.Context, userID, itemID uuid.UUID) error

	// ListByUser returns the user's lines, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// DeleteByUser removes every line the user has and returns how many were removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
