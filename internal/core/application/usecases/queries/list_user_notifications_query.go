package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/guard"
)

var ErrListUserNotificationsQueryIsNotConstructed = errors.New(
	"ListUserNotificationsQuery must be created via NewListUserNotificationsQuery constructor",
)

// ListUserNotificationsQuery lists every notification addressed to a user, newest first.
type ListUserNotificationsQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewListUserNotificationsQuery(userID kernel.UUID) (ListUserNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListUserNotificationsQuery{}, err
	}
	return ListUserNotificationsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUserNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListUserNotificationsQueryIsNotConstructed)
}

func (q ListUserNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

type NotificationResponse struct {
	ID        kernel.UUID          `json:"id"`
	UserID    kernel.UUID          `json:"userId"`
	Message   string               `json:"message"`
	Type      notification.Type    `json:"type"`
	Channel   notification.Channel `json:"channel"`
	Status    notification.Status  `json:"status"`
	SendAt    *time.Time           `json:"sendAt"`
	SentAt    *time.Time           `json:"sentAt"`
	CreatedAt time.Time            `json:"createdAt"`
}
