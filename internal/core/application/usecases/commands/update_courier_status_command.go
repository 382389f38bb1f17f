package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateCourierStatusCommandIsNotConstructed = errors.New(
	"UpdateCourierStatusCommand must be created via NewUpdateCourierStatusCommand constructor",
)

// UpdateCourierStatusCommand switches the availability of a courier.
type UpdateCourierStatusCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	status    courier.Status

	guard guard.ConstructorGuard
}

func NewUpdateCourierStatusCommand(courierID kernel.UUID, status courier.Status) (UpdateCourierStatusCommand, error) {
	if err := errors.Join(courierID.Validate(), status.Validate()); err != nil {
		return UpdateCourierStatusCommand{}, err
	}

	return UpdateCourierStatusCommand{
		courierID: courierID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCourierStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierStatusCommandIsNotConstructed)
}

func (c UpdateCourierStatusCommand) CourierID() kernel.UUID { return c.courierID }
func (c UpdateCourierStatusCommand) Status() courier.Status { return c.status }
