package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// UpdateNotificationStatusCommandHandler overwrites a notification status with
// no transition rules. SENT stamps the sent time.
type UpdateNotificationStatusCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      ports.Clock
}

func NewUpdateNotificationStatusCommandHandler(
	uowFactory NotificationUoWFactory,
	clock ports.Clock,
) UpdateNotificationStatusCommandHandler {
	return UpdateNotificationStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateNotificationStatusCommandHandler) Handle(ctx context.Context, cmd UpdateNotificationStatusCommand) error {
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

	repo := uow.NotificationRepository()
	n, err := repo.GetForUpdate(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if err = n.SetStatus(cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
