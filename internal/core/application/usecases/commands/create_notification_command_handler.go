package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CreateNotificationCommandHandler records a notification and, unless it is
// scheduled for later, sends it right away. A sender failure is stored as FAILED
// and is not returned to the caller.
//
// Example:
//
//	handler := NewCreateNotificationCommandHandler(uowFactory, sender, clock, logger)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown or inactive user
//	}
type CreateNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
	sender     ports.NotificationSender
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCreateNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
	sender ports.NotificationSender,
	clock ports.Clock,
	logger *slog.Logger,
) CreateNotificationCommandHandler {
	return CreateNotificationCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		clock:      clock,
		logger:     logger.With("component", "notifications"),
	}
}

func (h CreateNotificationCommandHandler) Handle(ctx context.Context, cmd CreateNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active, err := uow.UserDirectory().IsActive(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if !active {
		return errs.NewObjectNotFoundError("userId", cmd.UserID())
	}

	now := h.clock.Now()
	n, err := notification.NewNotification(
		cmd.NotificationID(),
		cmd.UserID(),
		cmd.Message(),
		cmd.Type(),
		cmd.Channel(),
		cmd.SendAt(),
		now,
	)
	if err != nil {
		return err
	}

	if !n.IsScheduled() {
		sendErr := h.sender.Send(ctx, n)
		if sendErr != nil {
			h.logger.WarnContext(ctx, "notification delivery failed",
				"notificationId", n.ID().String(),
				"channel", n.Channel().String(),
				"error", sendErr,
			)
		}
		n.RecordDelivery(sendErr, now)
	}

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
