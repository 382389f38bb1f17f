package paymentrepo_test

import (
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormPaymentRepository(t *testing.T) {
	ctx := t.Context()
	repo := postgres.NewGormUnitOfWorkFactory(pgtest.NewSQLite(t)).Create().PaymentRepository()
	orderID := kernel.NewUUID()

	p, err := payment.NewPayment(kernel.NewUUID(), orderID, payment.Card, decimal.RequireFromString("512.40"), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, p))

	exists, err := repo.ExistsForOrder(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForOrder(ctx, kernel.NewUUID())
	require.NoError(t, err)
	assert.False(t, exists)

	duplicate, err := payment.NewPayment(kernel.NewUUID(), orderID, payment.Cash, decimal.Zero, time.Now())
	require.NoError(t, err)
	require.ErrorIs(t, repo.Add(ctx, duplicate), errs.ErrAlreadyExists)

	require.NoError(t, p.SetStatus(payment.Refunded))
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.Get(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, payment.Refunded, got.Status())
	assert.Equal(t, payment.Card, got.Method())
	assert.True(t, got.Amount().Equal(decimal.RequireFromString("512.4")))

	_, err = repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
