package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// CancelOrderCommandHandler forces an order into CANCELLED. Only a DELIVERED
// order refuses.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   StatusNotifier
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, notifier StatusNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = changeOrderStatus(ctx, orderRepo, uow.CourierRepository(), o, order.Cancelled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, o)
	return nil
}
