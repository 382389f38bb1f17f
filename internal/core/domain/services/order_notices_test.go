package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestNoticeFor(t *testing.T) {
	tests := []struct {
		status  order.Status
		message string
		kind    notification.Type
	}{
		{order.New, "awaiting payment", notification.OrderCreated},
		{order.Confirmed, "confirmed", notification.PaymentSucceeded},
		{order.Preparing, "being prepared", notification.OrderConfirmed},
		{order.Cancelled, "payment failed, order cancelled", notification.PaymentFailed},
		{order.Ready, "ready for pickup", notification.OrderReady},
		{order.Taked, "courier en route", notification.OrderDelivering},
		{order.Delivered, "delivered", notification.OrderDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			message, kind := services.NoticeFor(tt.status)
			assert.Equal(t, tt.message, message)
			assert.Equal(t, tt.kind, kind)
		})
	}
}
