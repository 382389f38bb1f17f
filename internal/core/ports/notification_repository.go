package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
)

type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get returns the notification or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetForUpdate is Get with the row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// ListDue returns SCHEDULED notifications whose sendAt is at or before now, oldest first.
	ListDue(ctx context.Context, now time.Time) ([]*notification.Notification, error)
}
