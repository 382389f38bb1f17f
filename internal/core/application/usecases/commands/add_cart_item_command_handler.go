package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/application/views"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// AddCartItemCommandHandler admits a menu option into a cart. The checks run in
// this order: option exists, item available, restaurant active, restaurant open,
// cart bound to the same restaurant.
//
// Example:
//
//	handler := NewAddCartItemCommandHandler(uowFactory, clock)
//	view, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown option
//	case errors.Is(err, errs.ErrBusinessRuleViolation):
//	    // unavailable, closed or another restaurant
//	}
//	fmt.Println(*view.EtaMinutes)
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	clock      ports.Clock
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, clock ports.Clock) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the updated cart together with its ETA. When a concurrent
// first add for the same user wins the cart insert, the command is replayed
// once against the cart that request created.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (views.CartView, error) {
	if err := cmd.Validate(); err != nil {
		return views.CartView{}, err
	}

	view, err := h.handle(ctx, cmd)
	if errors.Is(err, errs.ErrAlreadyExists) {
		return h.handle(ctx, cmd)
	}
	return view, err
}

func (h AddCartItemCommandHandler) handle(ctx context.Context, cmd AddCartItemCommand) (views.CartView, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.CartView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	cartRepo := uow.CartRepository()

	item, err := catalogRepo.GetMenuItemByOption(ctx, cmd.OptionID())
	if err != nil {
		return views.CartView{}, err
	}
	if err = item.EnsureAvailable(); err != nil {
		return views.CartView{}, err
	}

	restaurant, err := catalogRepo.GetRestaurant(ctx, item.RestaurantID())
	if err != nil {
		return views.CartView{}, err
	}

	now := h.clock.Now()
	if err = restaurant.EnsureAcceptsOrders(now); err != nil {
		return views.CartView{}, err
	}

	c, isNew, err := loadOrCreateCart(ctx, cartRepo, cmd.UserID())
	if err != nil {
		return views.CartView{}, err
	}

	if _, err = c.AddItem(restaurant.ID(), item.ID(), cmd.OptionID(), cmd.Quantity()); err != nil {
		return views.CartView{}, err
	}

	if isNew {
		err = cartRepo.Add(ctx, c)
	} else {
		err = cartRepo.Update(ctx, c)
	}
	if err != nil {
		return views.CartView{}, err
	}

	view, err := buildCartView(ctx, uow, c, now)
	if err != nil {
		return views.CartView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.CartView{}, err
	}

	return view, nil
}

// loadOrCreateCart locks the user's cart, or builds a new one when the user has none yet.
func loadOrCreateCart(ctx context.Context, repo ports.CartRepository, userID kernel.UUID) (*cart.Cart, bool, error) {
	existing, err := repo.GetByUser(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		created, createErr := cart.NewCart(kernel.NewUUID(), userID)
		return created, true, createErr
	}
	if err != nil {
		return nil, false, err
	}

	locked, err := repo.GetForUpdate(ctx, existing.ID())
	if err != nil {
		return nil, false, err
	}
	return locked, false, nil
}

// cartViewSource is the read side every cart command needs to render its result.
type cartViewSource interface {
	CatalogRepoFactory
	CourierRepoFactory
}

func buildCartView(ctx context.Context, src cartViewSource, c *cart.Cart, now time.Time) (views.CartView, error) {
	menu, err := src.CatalogRepository().GetMenu(ctx, c.OptionIDs())
	if err != nil {
		return views.CartView{}, err
	}

	load, err := src.CourierRepository().Load(ctx)
	if err != nil {
		return views.CartView{}, err
	}

	return views.NewCartView(c, menu, now, load), nil
}
