package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/ports"
)

// ProcessDueResult counts the outcomes of one dispatch run. Skipped are
// notifications another run delivered or rescheduled in the meantime.
type ProcessDueResult struct {
	Sent    int
	Failed  int
	Skipped int
}

// ProcessDueNotificationsCommandHandler delivers due scheduled notifications.
// Each notification is handled in its own transaction with its row locked, so
// one failure never affects the others and overlapping runs cannot send twice.
//
// Example:
//
//	handler := NewProcessDueNotificationsCommandHandler(uowFactory, sender, clock, logger)
//	result, err := handler.Handle(ctx, NewProcessDueNotificationsCommand())
//	// err joins per-notification storage errors; sender failures are counted as Failed
type ProcessDueNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	sender     ports.NotificationSender
	clock      ports.Clock
	logger     *slog.Logger
}

func NewProcessDueNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	sender ports.NotificationSender,
	clock ports.Clock,
	logger *slog.Logger,
) ProcessDueNotificationsCommandHandler {
	return ProcessDueNotificationsCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		clock:      clock,
		logger:     logger.With("component", "notifications"),
	}
}

func (h ProcessDueNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessDueNotificationsCommand,
) (ProcessDueResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessDueResult{}, err
	}

	now := h.clock.Now()
	due, err := h.uowFactory.Create().NotificationRepository().ListDue(ctx, now)
	if err != nil {
		return ProcessDueResult{}, err
	}

	var result ProcessDueResult
	var failures []error
	for _, n := range due {
		status, delivered, deliverErr := h.deliver(ctx, n.ID(), now)
		if deliverErr != nil {
			failures = append(failures, fmt.Errorf("notification %s: %w", n.ID(), deliverErr))
			continue
		}

		switch {
		case !delivered:
			result.Skipped++
		case status == notification.Sent:
			result.Sent++
		default:
			result.Failed++
		}
	}

	return result, errors.Join(failures...)
}

// deliver reports the status the notification ended up with and whether a
// send was attempted. A notification that is no longer due is left alone.
func (h ProcessDueNotificationsCommandHandler) deliver(
	ctx context.Context,
	id kernel.UUID,
	now time.Time,
) (notification.Status, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return notification.UnknownStatus, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return notification.UnknownStatus, false, err
	}

	if !n.IsDue(now) {
		return n.Status(), false, nil
	}

	sendErr := h.sender.Send(ctx, n)
	if sendErr != nil {
		h.logger.WarnContext(ctx, "scheduled notification delivery failed",
			"notificationId", n.ID().String(),
			"channel", n.Channel().String(),
			"error", sendErr,
		)
	}
	n.RecordDelivery(sendErr, h.clock.Now())

	if err = repo.Update(ctx, n); err != nil {
		return notification.UnknownStatus, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return notification.UnknownStatus, false, err
	}

	return n.Status(), true, nil
}
