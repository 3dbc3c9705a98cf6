package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand triggers the opening of a delivery for the next
// completed preparing task that does not have one yet. Parameterless and
// driven by the background scheduler, like CreatePreparingOrderCommand.
type CreateDeliveryCommand struct {
	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to open the next delivery.
func NewCreateDeliveryCommand() CreateDeliveryCommand {
	return CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}
