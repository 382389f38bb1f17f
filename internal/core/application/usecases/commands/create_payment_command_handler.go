package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CreatePaymentCommandHandler opens a PENDING payment for the order total.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      ports.Clock
}

func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory, clock ports.Clock) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown order and with
// errs.ErrAlreadyExists when the order already has a payment.
func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()
	exists, err := paymentRepo.ExistsForOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewAlreadyExistsError("payment", o.ID())
	}

	p, err := payment.NewPayment(cmd.PaymentID(), o.ID(), cmd.Method(), o.Total(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
