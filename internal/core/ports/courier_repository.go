package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	Add(ctx context.Context, aggregate *courier.Courier) error
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get returns the courier or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate is Get with the courier row locked until the transaction ends.
	// Callers that also lock an order must lock the order first.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// Load counts all couriers and those carrying at least one active order.
	Load(ctx context.Context) (services.CourierLoad, error)
}
