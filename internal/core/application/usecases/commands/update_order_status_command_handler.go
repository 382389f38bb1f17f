package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies a status change under the order row
// lock. A DELIVERED order is never changed. When the order leaves TAKED its
// courier gets the active-order slot back.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   StatusNotifier
}

func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, notifier StatusNotifier) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if _, err = o.Status().TransitionTo(cmd.Status()); err != nil {
		return err
	}
	if courierID := cmd.CourierID(); courierID != nil {
		if err = o.EnsureAssignedTo(*courierID); err != nil {
			return err
		}
	}

	if err = changeOrderStatus(ctx, orderRepo, uow.CourierRepository(), o, cmd.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, o)
	return nil
}

// changeOrderStatus moves a locked order to next and persists it. The courier
// whose slot the move frees or takes back is locked after the order; a courier
// that cannot take the order back fails the whole move.
func changeOrderStatus(
	ctx context.Context,
	orders ports.OrderRepository,
	couriers ports.CourierRepository,
	o *order.Order,
	next order.Status,
) error {
	slot, err := o.ChangeStatus(next)
	if err != nil {
		return err
	}

	if slot.Released != nil {
		c, err := couriers.GetForUpdate(ctx, *slot.Released)
		if err != nil {
			return err
		}
		c.ReleaseOrder()
		if err = couriers.Update(ctx, c); err != nil {
			return err
		}
	}

	if slot.Taken != nil {
		c, err := couriers.GetForUpdate(ctx, *slot.Taken)
		if err != nil {
			return err
		}
		if err = c.TakeOrder(); err != nil {
			return err
		}
		if err = couriers.Update(ctx, c); err != nil {
			return err
		}
	}

	return orders.Update(ctx, o)
}
