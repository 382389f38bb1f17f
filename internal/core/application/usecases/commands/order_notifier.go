package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// NotificationCreator accepts notification intents.
type NotificationCreator interface {
	Handle(ctx context.Context, cmd CreateNotificationCommand) error
}

// StatusNotifier is told about every committed order status change.
type StatusNotifier interface {
	OrderStatusChanged(ctx context.Context, o *order.Order)
}

// OrderNotifier turns order status changes into push notifications for the
// customer. A delivered order also gets a review reminder. It runs after the
// business transaction has committed, so errors are only logged.
type OrderNotifier struct {
	creator NotificationCreator
	clock   ports.Clock
	logger  *slog.Logger
}

func NewOrderNotifier(creator NotificationCreator, clock ports.Clock, logger *slog.Logger) OrderNotifier {
	return OrderNotifier{
		creator: creator,
		clock:   clock,
		logger:  logger.With("component", "order-notifier"),
	}
}

func (n OrderNotifier) OrderStatusChanged(ctx context.Context, o *order.Order) {
	message, kind := services.NoticeFor(o.Status())
	n.emit(ctx, o, message, kind, nil)

	if o.Status() == order.Delivered {
		at := n.clock.Now().Add(services.ReviewReminderDelay)
		n.emit(ctx, o, services.ReviewReminderMessage, notification.ReviewReminder, &at)
	}
}

func (n OrderNotifier) emit(
	ctx context.Context,
	o *order.Order,
	message string,
	kind notification.Type,
	sendAt *time.Time,
) {
	cmd, err := NewCreateNotificationCommand(o.UserID(), message, kind, notification.Push, sendAt)
	if err == nil {
		err = n.creator.Handle(ctx, cmd)
	}
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to emit order notification",
			"orderId", o.ID().String(),
			"status", o.Status().String(),
			"type", kind.String(),
			"error", err,
		)
	}
}
