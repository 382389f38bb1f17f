package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand deletes one cart line.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(lineID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := lineID.Validate(); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{
		lineID: lineID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) LineID() kernel.UUID {
	return c.lineID
}
