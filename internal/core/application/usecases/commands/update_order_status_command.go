package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand or NewUpdateOrderStatusByCourierCommand",
)

// UpdateOrderStatusCommand moves an order to a new status. When issued by a
// courier it carries the courier id, and the order must be assigned to them.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	status    order.Status
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func NewUpdateOrderStatusByCourierCommand(
	orderID kernel.UUID,
	status order.Status,
	courierID kernel.UUID,
) (UpdateOrderStatusCommand, error) {
	command, err := NewUpdateOrderStatusCommand(orderID, status)
	if err = errors.Join(err, courierID.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	command.courierID = &courierID
	return command, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

// CourierID returns nil unless the change is made by a courier.
func (c UpdateOrderStatusCommand) CourierID() *kernel.UUID {
	if c.courierID == nil {
		return nil
	}
	id := *c.courierID
	return &id
}
