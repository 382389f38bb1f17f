package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterCourierCommand(t *testing.T) {
	tests := []struct {
		name    string
		cName   string
		phone   string
		wantErr error
	}{
		{"valid", "Kate", "+15550100", nil},
		{"blank name", " ", "+15550100", errs.ErrValueIsRequired},
		{"blank phone", "Kate", "", errs.ErrValueIsRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewRegisterCourierCommand(tt.cName, tt.phone, decimal.RequireFromString("4.5"))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, cmd.Validate())
			assert.NoError(t, cmd.CourierID().Validate())
		})
	}
}

func TestRegisterCourierCommandHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := commands.NewRegisterCourierCommandHandler(env.courierUoW())

	t.Run("new courier starts offline and idle", func(t *testing.T) {
		cmd, err := commands.NewRegisterCourierCommand("Kate", "+15550100", decimal.RequireFromString("4.5"))
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), cmd))

		c := env.loadCourier(t, cmd.CourierID())
		assert.Equal(t, "Kate", c.Name())
		assert.Equal(t, courier.Offline, c.Status())
		assert.Equal(t, 0, c.ActiveOrders())
		assert.True(t, c.Rating().Equal(decimal.RequireFromString("4.5")))
	})

	t.Run("rating above five", func(t *testing.T) {
		cmd, err := commands.NewRegisterCourierCommand("Kate", "+15550100", decimal.RequireFromString("5.1"))
		require.NoError(t, err)

		require.ErrorIs(t, handler.Handle(t.Context(), cmd), errs.ErrValueIsOutOfRange)
	})
}

func TestUpdateCourierStatusCommandHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := commands.NewUpdateCourierStatusCommandHandler(env.courierUoW())

	update := func(t *testing.T, courierID kernel.UUID, status courier.Status) error {
		cmd, err := commands.NewUpdateCourierStatusCommand(courierID, status)
		require.NoError(t, err)
		return handler.Handle(t.Context(), cmd)
	}

	t.Run("offline courier comes online", func(t *testing.T) {
		c := env.seedCourier(t, courier.Offline, "4.5", 0)

		require.NoError(t, update(t, c.ID(), courier.Free))

		assert.Equal(t, courier.Free, env.loadCourier(t, c.ID()).Status())
	})

	t.Run("idle courier goes offline", func(t *testing.T) {
		c := env.seedCourier(t, courier.Free, "4.5", 0)

		require.NoError(t, update(t, c.ID(), courier.Offline))

		assert.Equal(t, courier.Offline, env.loadCourier(t, c.ID()).Status())
	})

	t.Run("courier with orders cannot go offline", func(t *testing.T) {
		c := env.seedCourier(t, courier.Busy, "4.5", 2)

		err := update(t, c.ID(), courier.Offline)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Equal(t, courier.Busy, env.loadCourier(t, c.ID()).Status())
	})

	t.Run("unknown courier", func(t *testing.T) {
		require.ErrorIs(t, update(t, kernel.NewUUID(), courier.Free), errs.ErrObjectNotFound)
	})
}
