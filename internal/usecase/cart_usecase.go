package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the shopper's cart operations. Every call is scoped to one user.
type CartUsecase interface {
	// AddItem puts a product in the cart, adding to an existing line and
	// clamping the line quantity to the product's stock.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error)

	// SetQuantity replaces a line's quantity. It writes nothing when the quantity
	// is below 1 or above the stock read at call time.
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error)

	// RemoveItem deletes a line. Removing a missing line succeeds.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// Snapshot reads the cart fresh from the store, newest line first.
	Snapshot(ctx context.Context, userID uuid.UUID) (*entity.CartSnapshot, error)

	// Clear empties the cart and returns how many lines were removed.
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)
}
