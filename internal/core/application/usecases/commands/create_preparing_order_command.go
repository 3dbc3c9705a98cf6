package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrCreatePreparingOrderCommandIsNotConstructed = errors.New(
	"CreatePreparingOrderCommand must be created via NewCreatePreparingOrderCommand constructor",
)

// CreatePreparingOrderCommand triggers the opening of a warehouse preparing
// task for the next finished order that does not have one yet. This is a
// parameterless command driven by the background scheduler; the eligibility
// of the order is re-checked inside the handler transaction.
type CreatePreparingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewCreatePreparingOrderCommand creates a command to open the next preparing task.
func NewCreatePreparingOrderCommand() CreatePreparingOrderCommand {
	return CreatePreparingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CreatePreparingOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePreparingOrderCommandIsNotConstructed)
}
