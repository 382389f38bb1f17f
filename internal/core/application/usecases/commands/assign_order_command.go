package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand hands a READY order to a courier.
//
// Example:
//
//	cmd, _ := NewAssignOrderCommand(courierID, orderID)
//	handler := NewAssignOrderCommandHandler(uowFactory, notifier)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("unknown courier or order")
//	case errors.Is(err, errs.ErrBusinessRuleViolation):
//	    log.Printf("courier cannot take the order: %v", err)
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(courierID, orderID kernel.UUID) (AssignOrderCommand, error) {
	if err := errors.Join(courierID.Validate(), orderID.Validate()); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		courierID: courierID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) CourierID() kernel.UUID { return c.courierID }
func (c AssignOrderCommand) OrderID() kernel.UUID   { return c.orderID }
