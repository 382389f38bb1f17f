package commands

import (
	"context"

	"fooddelivery/internal/core/application/views"
	"fooddelivery/internal/core/ports"
)

type UpdateCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
	clock      ports.Clock
}

func NewUpdateCartItemQuantityCommandHandler(
	uowFactory CartUoWFactory,
	clock ports.Clock,
) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle fails with errs.ErrObjectNotFound when no cart holds the line.
func (h UpdateCartItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCartItemQuantityCommand,
) (views.CartView, error) {
	if err := cmd.Validate(); err != nil {
		return views.CartView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.CartView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	c, err := cartRepo.GetByLine(ctx, cmd.LineID())
	if err != nil {
		return views.CartView{}, err
	}

	if err = c.UpdateQuantity(cmd.LineID(), cmd.Quantity()); err != nil {
		return views.CartView{}, err
	}

	if err = cartRepo.Update(ctx, c); err != nil {
		return views.CartView{}, err
	}

	view, err := buildCartView(ctx, uow, c, h.clock.Now())
	if err != nil {
		return views.CartView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.CartView{}, err
	}

	return view, nil
}
