package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSignOrderByClientCommandIsNotConstructed = errors.New(
	"SignOrderByClientCommand must be created via NewSignOrderByClientCommand constructor",
)

// SignOrderByClientCommand represents the client countersigning an order that
// the employee has already signed.
type SignOrderByClientCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSignOrderByClientCommand creates a command to countersign an order.
func NewSignOrderByClientCommand(orderID kernel.UUID) (SignOrderByClientCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SignOrderByClientCommand{}, err
	}

	return SignOrderByClientCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SignOrderByClientCommand) Validate() error {
	return c.guard.Validate(ErrSignOrderByClientCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to countersign.
func (c SignOrderByClientCommand) OrderID() kernel.UUID {
	return c.orderID
}
