package services

import (
	"time"

	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
)

const (
	// ReviewReminderDelay is how long after delivery the review reminder goes out.
	ReviewReminderDelay   = 30 * time.Minute
	ReviewReminderMessage = "please review your order"
)

// NoticeFor maps an order status to the customer message and notification type.
func NoticeFor(status order.Status) (string, notification.Type) {
	switch status {
	case order.New:
		return "awaiting payment", notification.OrderCreated
	case order.Confirmed:
		return "confirmed", notification.PaymentSucceeded
	case order.Preparing:
		return "being prepared", notification.OrderConfirmed
	case order.Cancelled:
		return "payment failed, order cancelled", notification.PaymentFailed
	case order.Ready:
		return "ready for pickup", notification.OrderReady
	case order.Taked:
		return "courier en route", notification.OrderDelivering
	case order.Delivered:
		return "delivered", notification.OrderDelivered
	default:
		return "order status changed", notification.Promotional
	}
}
