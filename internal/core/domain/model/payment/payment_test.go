package payment_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), payment.Card, decimal.RequireFromString("500"), time.Now())

	require.NoError(t, err)
	assert.Equal(t, payment.Pending, p.Status())

	_, err = payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), payment.UnknownMethod, decimal.Zero, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPayment_SetStatus(t *testing.T) {
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), payment.Cash, decimal.RequireFromString("500"), time.Now())
	require.NoError(t, err)

	require.NoError(t, p.SetStatus(payment.Failed))
	require.NoError(t, p.SetStatus(payment.Succeeded))
	assert.Equal(t, payment.Succeeded, p.Status())

	require.ErrorIs(t, p.SetStatus(payment.UnknownStatus), errs.ErrValueIsInvalid)
}

func TestStatus_OrderStatus(t *testing.T) {
	tests := []struct {
		status payment.Status
		want   order.Status
		moves  bool
	}{
		{payment.Succeeded, order.Confirmed, true},
		{payment.Failed, order.Cancelled, true},
		{payment.Pending, order.Unknown, false},
		{payment.Refunded, order.Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			got, ok := tt.status.OrderStatus()
			assert.Equal(t, tt.moves, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromString(t *testing.T) {
	s, err := payment.StatusFromString("refunded")
	require.NoError(t, err)
	assert.Equal(t, payment.Refunded, s)

	m, err := payment.MethodFromString("CARD")
	require.NoError(t, err)
	assert.Equal(t, payment.Card, m)

	_, err = payment.MethodFromString("crypto")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
