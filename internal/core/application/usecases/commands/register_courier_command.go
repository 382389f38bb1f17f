package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a request to register a new courier.
//
// Example:
//
//	cmd, err := NewRegisterCourierCommand("John Doe", "+15550100", decimal.RequireFromString("4.8"))
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewRegisterCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register courier: %w", err)
//	}
//	fmt.Printf("Registered courier with ID: %s", cmd.CourierID())
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	phone     string
	rating    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand generates the courier id. The rating range is
// checked by the courier aggregate.
func NewRegisterCourierCommand(name, phone string, rating decimal.Decimal) (RegisterCourierCommand, error) {
	command := RegisterCourierCommand{
		courierID: kernel.NewUUID(),
		rating:    rating,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setPhone(phone),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

func (c RegisterCourierCommand) CourierID() kernel.UUID  { return c.courierID }
func (c RegisterCourierCommand) Name() string            { return c.name }
func (c RegisterCourierCommand) Phone() string           { return c.phone }
func (c RegisterCourierCommand) Rating() decimal.Decimal { return c.rating }

func (c *RegisterCourierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterCourierCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
