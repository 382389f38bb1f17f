package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuFixture struct {
	restaurantID kernel.UUID
	soup         *catalog.MenuItem
	soupOption   *catalog.Option
	pie          *catalog.MenuItem
	pieOption    *catalog.Option
}

func newMenuFixture(t *testing.T) menuFixture {
	t.Helper()
	f := menuFixture{restaurantID: kernel.NewUUID()}

	var err error
	f.soup, err = catalog.NewMenuItem(kernel.NewUUID(), f.restaurantID, "Borscht")
	require.NoError(t, err)
	f.soupOption, err = f.soup.AddOption("large", decimal.RequireFromString("200.00"), 15)
	require.NoError(t, err)

	f.pie, err = catalog.NewMenuItem(kernel.NewUUID(), f.restaurantID, "Pie")
	require.NoError(t, err)
	f.pieOption, err = f.pie.AddOption("slice", decimal.RequireFromString("50.00"), 5)
	require.NoError(t, err)

	return f
}

func (f menuFixture) menu() catalog.Menu {
	return catalog.Menu{f.soup, f.pie}
}

func (f menuFixture) cart(t *testing.T, soups, pies int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	if soups > 0 {
		_, err = c.AddItem(f.restaurantID, f.soup.ID(), f.soupOption.ID(), soups)
		require.NoError(t, err)
	}
	if pies > 0 {
		_, err = c.AddItem(f.restaurantID, f.pie.ID(), f.pieOption.ID(), pies)
		require.NoError(t, err)
	}
	return c
}

func TestCheckout_Total(t *testing.T) {
	checkout := services.NewCheckout()

	t.Run("sums price times quantity", func(t *testing.T) {
		f := newMenuFixture(t)

		total, err := checkout.Total(f.cart(t, 1, 2), f.menu())

		require.NoError(t, err)
		assert.Equal(t, "300.00", total.StringFixed(2))
	})

	t.Run("below minimum", func(t *testing.T) {
		f := newMenuFixture(t)

		_, err := checkout.Total(f.cart(t, 1, 1), f.menu())

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "250.00")
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newMenuFixture(t)
		_, err := checkout.Total(f.cart(t, 0, 0), f.menu())
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("lists every unavailable item", func(t *testing.T) {
		f := newMenuFixture(t)
		f.soup.SetAvailable(false)
		f.pie.SetAvailable(false)

		_, err := checkout.Total(f.cart(t, 2, 2), f.menu())

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "Borscht, Pie")
	})

	t.Run("option missing from menu is reported with the unavailable items", func(t *testing.T) {
		f := newMenuFixture(t)
		f.pie.SetAvailable(false)

		_, err := checkout.Total(f.cart(t, 2, 2), catalog.Menu{f.pie})

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		require.NotErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "Pie")
		assert.Contains(t, err.Error(), "option "+f.soupOption.ID().String())
	})

	t.Run("option missing from menu alone", func(t *testing.T) {
		f := newMenuFixture(t)

		_, err := checkout.Total(f.cart(t, 2, 0), catalog.Menu{f.pie})

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "not available now")
	})
}
