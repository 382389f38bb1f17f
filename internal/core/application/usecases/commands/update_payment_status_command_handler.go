package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// UpdatePaymentStatusCommandHandler stores a payment outcome and drives the
// order: SUCCEEDED confirms it, FAILED cancels it. The order goes through the
// same state machine as any other status change, so a DELIVERED order refuses
// and the payment update is rolled back with it.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   StatusNotifier
}

func NewUpdatePaymentStatusCommandHandler(
	uowFactory PaymentUoWFactory,
	notifier StatusNotifier,
) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	p, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = p.SetStatus(cmd.Status()); err != nil {
		return err
	}

	var changed *order.Order
	if next, ok := p.Status().OrderStatus(); ok {
		orderRepo := uow.OrderRepository()
		o, err := orderRepo.GetForUpdate(ctx, p.OrderID())
		if err != nil {
			return err
		}
		if err = changeOrderStatus(ctx, orderRepo, uow.CourierRepository(), o, next); err != nil {
			return err
		}
		changed = o
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if changed != nil {
		h.notifier.OrderStatusChanged(ctx, changed)
	}
	return nil
}
