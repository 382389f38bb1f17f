package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateNotificationStatusCommandIsNotConstructed = errors.New(
	"UpdateNotificationStatusCommand must be created via NewUpdateNotificationStatusCommand constructor",
)

type UpdateNotificationStatusCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	status         notification.Status

	guard guard.ConstructorGuard
}

func NewUpdateNotificationStatusCommand(
	notificationID kernel.UUID,
	status notification.Status,
) (UpdateNotificationStatusCommand, error) {
	if err := errors.Join(notificationID.Validate(), status.Validate()); err != nil {
		return UpdateNotificationStatusCommand{}, err
	}

	return UpdateNotificationStatusCommand{
		notificationID: notificationID,
		status:         status,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateNotificationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateNotificationStatusCommandIsNotConstructed)
}

func (c UpdateNotificationStatusCommand) NotificationID() kernel.UUID { return c.notificationID }
func (c UpdateNotificationStatusCommand) Status() notification.Status { return c.status }
