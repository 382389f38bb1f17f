package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts quantity units of a menu option into the user's cart.
// The cart is created on first use.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(userID, optionID, 2)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	optionID kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand validates the input shape: both ids are required and the
// quantity must be positive.
func NewAddCartItemCommand(userID, optionID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setOptionID(optionID),
		command.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return command, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) UserID() kernel.UUID   { return c.userID }
func (c AddCartItemCommand) OptionID() kernel.UUID { return c.optionID }
func (c AddCartItemCommand) Quantity() int         { return c.quantity }

func (c *AddCartItemCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *AddCartItemCommand) setOptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.optionID = id
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("must be positive, got %d", quantity))
	}
	return nil
}
