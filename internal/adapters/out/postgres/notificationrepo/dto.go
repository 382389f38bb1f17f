package notificationrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Message   string     `gorm:"type:text;not null"`
	Type      int        `gorm:"type:int;not null"`
	Channel   int        `gorm:"type:int;not null"`
	Status    int        `gorm:"type:int;not null;index:idx_notifications_due,priority:1"`
	SendAt    *time.Time `gorm:"index:idx_notifications_due,priority:2"`
	SentAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		Message:   n.Message(),
		Type:      int(n.Type()),
		Channel:   int(n.Channel()),
		Status:    int(n.Status()),
		SendAt:    normalize(n.SendAt()),
		SentAt:    normalize(n.SentAt()),
		CreatedAt: n.CreatedAt().UTC().Truncate(time.Microsecond),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		userID,
		dto.Message,
		notification.Type(dto.Type),
		notification.Channel(dto.Channel),
		notification.Status(dto.Status),
		dto.SendAt,
		dto.SentAt,
		dto.CreatedAt,
	)
}

// normalize stores instants in UTC with the microsecond precision of a postgres timestamp,
// which keeps send_at comparisons consistent across drivers.
func normalize(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC().Truncate(time.Microsecond)
	return &v
}
