package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the user's cart and unbinds its restaurant.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClearCartCommand(userID kernel.UUID) (ClearCartCommand, error) {
	if err := userID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}

	return ClearCartCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) UserID() kernel.UUID {
	return c.userID
}
