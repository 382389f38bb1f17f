package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// A cart is always stored together with its lines.
type CartRepository interface {
	// Add persists a new cart. Each user owns at most one cart.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update replaces the stored restaurant binding and lines with the aggregate's state.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get returns the cart by id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetForUpdate is Get with the cart row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetByUser returns the cart owned by userID or an errs.ObjectNotFoundError.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// GetByLine returns the cart holding lineID or an errs.ObjectNotFoundError.
	GetByLine(ctx context.Context, lineID kernel.UUID) (*cart.Cart, error)
}
