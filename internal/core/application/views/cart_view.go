// Package views holds read models shared by commands and queries.
package views

import (
	"time"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

type CartLineView struct {
	ID          kernel.UUID     `json:"id"`
	ItemID      kernel.UUID     `json:"itemId"`
	OptionID    kernel.UUID     `json:"optionId"`
	ItemName    string          `json:"itemName"`
	OptionName  string          `json:"optionName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	PrepMinutes int             `json:"prepMinutes"`
}

// CartView is a cart enriched with catalog data. EtaMinutes is nil for an empty cart.
type CartView struct {
	ID           kernel.UUID     `json:"id"`
	UserID       kernel.UUID     `json:"userId"`
	RestaurantID *kernel.UUID    `json:"restaurantId"`
	Lines        []CartLineView  `json:"lines"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	EtaMinutes   *int            `json:"etaMinutes"`
}

// NewCartView resolves every line against menu and computes the ETA at now.
// Lines whose option is no longer in the menu are listed without catalog data
// and do not contribute to price or preparation time.
func NewCartView(c *cart.Cart, menu catalog.Menu, now time.Time, load services.CourierLoad) CartView {
	view := CartView{
		ID:           c.ID(),
		UserID:       c.UserID(),
		RestaurantID: c.RestaurantID(),
		Lines:        make([]CartLineView, 0, len(c.Lines())),
		Subtotal:     decimal.Zero,
	}

	prep := make([]int, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		line := CartLineView{
			ID:       l.ID(),
			ItemID:   l.ItemID(),
			OptionID: l.OptionID(),
			Quantity: l.Quantity(),
		}
		if item, option, ok := menu.Find(l.OptionID()); ok {
			line.ItemName = item.Name()
			line.OptionName = option.Name()
			line.Price = option.Price()
			line.PrepMinutes = option.PrepMinutes()
			view.Subtotal = view.Subtotal.Add(option.Price().Mul(decimal.NewFromInt(int64(l.Quantity()))))
			prep = append(prep, option.PrepMinutes())
		}
		view.Lines = append(view.Lines, line)
	}

	if view.RestaurantID != nil {
		view.EtaMinutes = services.NewEtaEstimator().Estimate(prep, now, load)
	}
	return view
}
