package catalog_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.TimeOfDayFromString(s)
	require.NoError(t, err)
	return tod
}

func TestRestaurant_EnsureAcceptsOrders(t *testing.T) {
	r, err := catalog.NewRestaurant(kernel.NewUUID(), "Pelmeni", mustTime(t, "10:00"), mustTime(t, "23:00"))
	require.NoError(t, err)

	at := func(h, m int) time.Time { return time.Date(2024, 3, 4, h, m, 0, 0, time.UTC) }

	require.NoError(t, r.EnsureAcceptsOrders(at(10, 0)))
	require.ErrorIs(t, r.EnsureAcceptsOrders(at(9, 59)), errs.ErrBusinessRuleViolation)
	require.ErrorIs(t, r.EnsureAcceptsOrders(at(23, 0)), errs.ErrBusinessRuleViolation)

	r.Deactivate()
	err = r.EnsureAcceptsOrders(at(12, 0))
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	assert.Contains(t, err.Error(), "not active")
}

func TestNewRestaurant_RejectsInvertedHours(t *testing.T) {
	_, err := catalog.NewRestaurant(kernel.NewUUID(), "Night", mustTime(t, "22:00"), mustTime(t, "02:00"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMenuItem(t *testing.T) {
	item, err := catalog.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Borscht")
	require.NoError(t, err)

	small, err := item.AddOption("small", decimal.RequireFromString("150.00"), 10)
	require.NoError(t, err)
	_, err = item.AddOption("large", decimal.RequireFromString("-1"), 10)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	found, ok := item.Option(small.ID())
	require.True(t, ok)
	assert.Equal(t, 10, found.PrepMinutes())

	require.NoError(t, item.EnsureAvailable())
	item.SetAvailable(false)
	err = item.EnsureAvailable()
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	assert.Contains(t, err.Error(), "Borscht")

	menu := catalog.Menu{item}
	gotItem, gotOption, ok := menu.Find(small.ID())
	require.True(t, ok)
	assert.Equal(t, item, gotItem)
	assert.Equal(t, small, gotOption)

	_, _, ok = menu.Find(kernel.NewUUID())
	assert.False(t, ok)
}
