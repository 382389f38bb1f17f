package commands

import (
	"context"

	"fooddelivery/internal/core/application/views"
	"fooddelivery/internal/core/ports"
)

// RemoveCartItemCommandHandler deletes a line. A cart left without lines is
// unbound from its restaurant.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	clock      ports.Clock
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory, clock ports.Clock) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) (views.CartView, error) {
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

	if err = c.RemoveLine(cmd.LineID()); err != nil {
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
