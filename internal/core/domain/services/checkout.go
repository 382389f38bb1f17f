package services

import (
	"strings"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MinOrderAmount is the smallest total an order can be placed with.
var MinOrderAmount = decimal.RequireFromString("300.00")

// Checkout validates a cart for conversion into an order.
type Checkout struct{}

func NewCheckout() Checkout {
	return Checkout{}
}

// Total checks the cart against the menu and returns the order total.
// Unavailable items are reported together, by name; lines whose option has
// left the menu are listed by option id in the same error.
func (Checkout) Total(c *cart.Cart, menu catalog.Menu) (decimal.Decimal, error) {
	if c.IsEmpty() {
		return decimal.Zero, errs.NewBusinessRuleViolationError("order cannot be created from an empty cart")
	}

	total := decimal.Zero
	unavailable := make([]string, 0)
	for _, line := range c.Lines() {
		item, option, ok := menu.Find(line.OptionID())
		if !ok {
			unavailable = append(unavailable, "option "+line.OptionID().String())
			continue
		}
		if !item.IsAvailable() {
			unavailable = append(unavailable, item.Name())
			continue
		}
		total = total.Add(option.Price().Mul(decimal.NewFromInt(int64(line.Quantity()))))
	}

	if len(unavailable) > 0 {
		return decimal.Zero, errs.NewBusinessRuleViolationError(
			"these items are not available now: " + strings.Join(unavailable, ", "),
		)
	}

	if total.LessThan(MinOrderAmount) {
		return decimal.Zero, errs.NewBusinessRuleViolationError(
			"order total " + total.StringFixed(2) + " is below the minimum of " + MinOrderAmount.StringFixed(2),
		)
	}

	return total, nil
}
