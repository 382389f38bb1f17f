package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// AssignOrderCommandHandler binds a courier to an order and moves the order to
// TAKED. Both rows are locked, order first, so two callers racing for the same
// order or courier are serialized and the loser sees the winner's changes.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   StatusNotifier
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory, notifier StatusNotifier) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle runs the eligibility checks of services.OrderDispatcher and persists
// both aggregates in one transaction.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = services.NewOrderDispatcher().Dispatch(o, c); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, o)
	return nil
}
