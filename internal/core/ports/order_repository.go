package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and courier binding. The total is immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	// Every status change and courier assignment loads the order through it, which
	// serializes concurrent writers of one order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
