package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand represents closing the paperwork of a fully signed
// order, which makes it eligible for warehouse preparing.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishOrderCommand creates a command to finish a signed order.
func NewFinishOrderCommand(orderID kernel.UUID) (FinishOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FinishOrderCommand{}, err
	}

	return FinishOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to finish.
func (c FinishOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
