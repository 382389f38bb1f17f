package commands

import (
	"context"
)

// UpdateCourierStatusCommandHandler refuses OFFLINE while the courier still
// carries orders.
type UpdateCourierStatusCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewUpdateCourierStatusCommandHandler(uowFactory CourierUoWFactory) UpdateCourierStatusCommandHandler {
	return UpdateCourierStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateCourierStatusCommandHandler) Handle(ctx context.Context, cmd UpdateCourierStatusCommand) error {
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

	courierRepo := uow.CourierRepository()
	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = c.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
