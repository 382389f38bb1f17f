package queries

import (
	"context"

	"fooddelivery/internal/core/application/views"
	"fooddelivery/internal/core/ports"
)

// GetCartQueryHandler reads through the repositories because the ETA needs the
// catalog and the live courier load, not just the stored rows.
type GetCartQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetCartQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetCartQueryHandler {
	return GetCartQueryHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns errs.ErrObjectNotFound when the user has no cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (views.CartView, error) {
	if err := query.Validate(); err != nil {
		return views.CartView{}, err
	}

	uow := h.uowFactory.Create()

	c, err := uow.CartRepository().GetByUser(ctx, query.UserID())
	if err != nil {
		return views.CartView{}, err
	}

	menu, err := uow.CatalogRepository().GetMenu(ctx, c.OptionIDs())
	if err != nil {
		return views.CartView{}, err
	}

	load, err := uow.CourierRepository().Load(ctx)
	if err != nil {
		return views.CartView{}, err
	}

	return views.NewCartView(c, menu, h.clock.Now(), load), nil
}
