package orderrepo_test

import (
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOrderRepository(t *testing.T) {
	ctx := t.Context()
	repo := postgres.NewGormUnitOfWorkFactory(pgtest.NewSQLite(t)).Create().OrderRepository()

	createdAt := time.Date(2024, 5, 11, 19, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, decimal.RequireFromString("450.00"), order.Ready, createdAt,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, o))

	t.Run("round trip", func(t *testing.T) {
		got, err := repo.Get(ctx, o.ID())

		require.NoError(t, err)
		assert.Equal(t, order.Ready, got.Status())
		assert.Nil(t, got.CourierID())
		assert.True(t, got.Total().Equal(decimal.RequireFromString("450")))
		assert.True(t, got.CreatedAt().Equal(createdAt))
		assert.True(t, got.UserID().IsEqual(o.UserID()))
	})

	t.Run("update binds courier and status", func(t *testing.T) {
		courierID := kernel.NewUUID()
		require.NoError(t, o.AssignCourier(courierID))
		require.NoError(t, repo.Update(ctx, o))

		got, err := repo.GetForUpdate(ctx, o.ID())

		require.NoError(t, err)
		assert.Equal(t, order.Taked, got.Status())
		require.NotNil(t, got.CourierID())
		assert.True(t, got.CourierID().IsEqual(courierID))
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
