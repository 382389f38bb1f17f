package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// CreateOrderCommandHandler handles checkout. The order is created in NEW status
// with its total fixed, and the source cart is emptied in the same transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, notifier)
//	cmd, _ := NewCreateOrderCommand(cartID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	clock      ports.Clock
	notifier   StatusNotifier
}

func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	clock ports.Clock,
	notifier StatusNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown cart and with
// errs.ErrBusinessRuleViolation for an empty cart, unavailable items or a total
// below services.MinOrderAmount. Nothing is written on failure.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	cartRepo := uow.CartRepository()
	c, err := cartRepo.GetForUpdate(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	menu, err := uow.CatalogRepository().GetMenu(ctx, c.OptionIDs())
	if err != nil {
		return err
	}

	total, err := services.NewCheckout().Total(c, menu)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), c.UserID(), c.ID(), *c.RestaurantID(), total, h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	c.Clear()
	if err = cartRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, o)
	return nil
}
