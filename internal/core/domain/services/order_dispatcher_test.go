package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, decimal.RequireFromString("500"), status, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func onlineCourier(t *testing.T, status courier.Status, rating string, active int) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(kernel.NewUUID(), "Oleg", "", status, decimal.RequireFromString(rating), active)
	require.NoError(t, err)
	return c
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("assigns ready order to eligible courier", func(t *testing.T) {
		o := readyOrder(t, order.Ready)
		c := onlineCourier(t, courier.Free, "4.8", 1)

		require.NoError(t, dispatcher.Dispatch(o, c))

		assert.Equal(t, order.Taked, o.Status())
		assert.True(t, o.CourierID().IsEqual(c.ID()))
		assert.Equal(t, 2, c.ActiveOrders())
	})

	tests := []struct {
		name    string
		order   order.Status
		courier courier.Status
		rating  string
		active  int
	}{
		{"offline courier", order.Ready, courier.Offline, "4.8", 0},
		{"order not ready", order.Preparing, courier.Free, "4.8", 0},
		{"courier at capacity", order.Ready, courier.Busy, "4.8", courier.MaxActiveOrders},
		{"rating below three", order.Ready, courier.Free, "2.9", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := readyOrder(t, tt.order)
			c := onlineCourier(t, tt.courier, tt.rating, tt.active)

			err := dispatcher.Dispatch(o, c)

			require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
			assert.Equal(t, tt.order, o.Status())
			assert.Nil(t, o.CourierID())
			assert.Equal(t, tt.active, c.ActiveOrders())
		})
	}
}
