package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/notification"
)

// NotificationSender delivers one notification through an external transport.
// Any returned error marks the delivery attempt as failed; the reason is not interpreted.
type NotificationSender interface {
	Send(ctx context.Context, n *notification.Notification) error
}
