package commands

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateNotificationCommandIsNotConstructed = errors.New(
	"CreateNotificationCommand must be created via NewCreateNotificationCommand constructor",
)

// CreateNotificationCommand is a notification intent. A sendAt in the future
// defers delivery to the dispatch job; otherwise delivery is attempted at once.
//
// Example:
//
//	at := time.Now().Add(30 * time.Minute)
//	cmd, err := NewCreateNotificationCommand(userID, "please review your order",
//	    notification.ReviewReminder, notification.Push, &at)
type CreateNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         kernel.UUID
	message        string
	kind           notification.Type
	channel        notification.Channel
	sendAt         *time.Time

	guard guard.ConstructorGuard
}

// NewCreateNotificationCommand generates the notification id.
func NewCreateNotificationCommand(
	userID kernel.UUID,
	message string,
	kind notification.Type,
	channel notification.Channel,
	sendAt *time.Time,
) (CreateNotificationCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		validateMessage(message),
		kind.Validate(),
		channel.Validate(),
	); err != nil {
		return CreateNotificationCommand{}, err
	}

	command := CreateNotificationCommand{
		notificationID: kernel.NewUUID(),
		userID:         userID,
		message:        message,
		kind:           kind,
		channel:        channel,
		guard:          guard.NewConstructorGuard(),
	}
	if sendAt != nil {
		at := *sendAt
		command.sendAt = &at
	}

	return command, nil
}

func (c CreateNotificationCommand) Validate() error {
	return c.guard.Validate(ErrCreateNotificationCommandIsNotConstructed)
}

func (c CreateNotificationCommand) NotificationID() kernel.UUID   { return c.notificationID }
func (c CreateNotificationCommand) UserID() kernel.UUID           { return c.userID }
func (c CreateNotificationCommand) Message() string               { return c.message }
func (c CreateNotificationCommand) Type() notification.Type       { return c.kind }
func (c CreateNotificationCommand) Channel() notification.Channel { return c.channel }

// SendAt returns nil for an immediate notification.
func (c CreateNotificationCommand) SendAt() *time.Time {
	if c.sendAt == nil {
		return nil
	}
	at := *c.sendAt
	return &at
}

func validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	return nil
}
