package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGenerateOrderCommandIsNotConstructed = errors.New(
	"GenerateOrderCommand must be created via NewGenerateOrderCommand constructor",
)

// GenerateOrderCommand represents the employee signing a draft order: the
// order documents are generated and the order moves to the signed-by-employee
// status with a link to the generated folder.
type GenerateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateOrderCommand creates a command to sign a draft by the employee.
func NewGenerateOrderCommand(orderID kernel.UUID) (GenerateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return GenerateOrderCommand{}, err
	}

	return GenerateOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateOrderCommandIsNotConstructed if validation fails.
func (c GenerateOrderCommand) Validate() error {
	return c.guard.Validate(ErrGenerateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the draft to sign.
func (c GenerateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
