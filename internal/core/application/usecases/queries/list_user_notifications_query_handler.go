package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUserNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListUserNotificationsQueryHandler(db *gorm.DB) ListUserNotificationsQueryHandler {
	return ListUserNotificationsQueryHandler{db: db}
}

type notificationRow struct {
	ID        uuid.UUID
	Message   string
	Type      int
	Channel   int
	Status    int
	SendAt    *time.Time
	SentAt    *time.Time
	CreatedAt time.Time
}

// Handle returns errs.ErrObjectNotFound when the user does not exist.
func (h ListUserNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListUserNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	userID := query.UserID().Bytes()

	var users int64
	if err := db.Raw(`SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&users).Error; err != nil {
		return nil, err
	}
	if users == 0 {
		return nil, errs.NewObjectNotFoundError("userId", query.UserID())
	}

	var rows []notificationRow
	err := db.Raw(`
		SELECT id, message, type, channel, status, send_at, sent_at, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]NotificationResponse, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		result = append(result, NotificationResponse{
			ID:        id,
			UserID:    query.UserID(),
			Message:   row.Message,
			Type:      notification.Type(row.Type),
			Channel:   notification.Channel(row.Channel),
			Status:    notification.Status(row.Status),
			SendAt:    row.SendAt,
			SentAt:    row.SentAt,
			CreatedAt: row.CreatedAt,
		})
	}

	return result, nil
}
