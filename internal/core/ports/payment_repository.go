package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	// Add persists a payment. The storage enforces one payment per order.
	Add(ctx context.Context, aggregate *payment.Payment) error
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get returns the payment or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
