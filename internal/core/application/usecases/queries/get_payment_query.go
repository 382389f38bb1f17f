package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPaymentQueryIsNotConstructed = errors.New(
	"GetPaymentQuery must be created via NewGetPaymentQuery constructor",
)

type GetPaymentQuery struct {
	paymentID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetPaymentQuery(paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := paymentID.Validate(); err != nil {
		return GetPaymentQuery{}, err
	}
	return GetPaymentQuery{paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

func (q GetPaymentQuery) PaymentID() kernel.UUID {
	return q.paymentID
}

type PaymentResponse struct {
	ID        kernel.UUID     `json:"id"`
	OrderID   kernel.UUID     `json:"orderId"`
	Method    payment.Method  `json:"method"`
	Status    payment.Status  `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}
