package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand opens the payment of an order. An order has at most one payment.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	method    payment.Method

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(orderID kernel.UUID, method payment.Method) (CreatePaymentCommand, error) {
	if err := errors.Join(orderID.Validate(), method.Validate()); err != nil {
		return CreatePaymentCommand{}, err
	}

	return CreatePaymentCommand{
		paymentID: kernel.NewUUID(),
		orderID:   orderID,
		method:    method,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c CreatePaymentCommand) OrderID() kernel.UUID   { return c.orderID }
func (c CreatePaymentCommand) Method() payment.Method { return c.method }
