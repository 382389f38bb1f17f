package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrProcessDueNotificationsCommandIsNotConstructed = errors.New(
	"ProcessDueNotificationsCommand must be created via NewProcessDueNotificationsCommand constructor",
)

// ProcessDueNotificationsCommand triggers delivery of every scheduled
// notification whose send time has come. It is issued by the dispatch job.
type ProcessDueNotificationsCommand struct {
	guard guard.ConstructorGuard
}

func NewProcessDueNotificationsCommand() ProcessDueNotificationsCommand {
	return ProcessDueNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *ProcessDueNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrProcessDueNotificationsCommandIsNotConstructed)
}
