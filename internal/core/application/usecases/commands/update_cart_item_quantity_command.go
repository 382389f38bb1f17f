package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
)

// UpdateCartItemQuantityCommand overwrites the quantity of a cart line.
type UpdateCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	lineID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemQuantityCommand(lineID kernel.UUID, quantity int) (UpdateCartItemQuantityCommand, error) {
	if err := errors.Join(lineID.Validate(), validateQuantity(quantity)); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}

	return UpdateCartItemQuantityCommand{
		lineID:   lineID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

func (c UpdateCartItemQuantityCommand) LineID() kernel.UUID { return c.lineID }
func (c UpdateCartItemQuantityCommand) Quantity() int       { return c.quantity }
