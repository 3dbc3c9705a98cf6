package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrFinishPreparingCommandIsNotConstructed = errors.New(
	"FinishPreparingCommand must be created via NewFinishPreparingCommand constructor",
)

// FinishPreparingCommand represents the appointed employee reporting a
// preparing task as completed.
type FinishPreparingCommand struct { //nolint:recvcheck //using for validation
	preparingOrderID kernel.UUID
	employeeID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishPreparingCommand creates a command to complete a preparing task.
func NewFinishPreparingCommand(preparingOrderID, employeeID kernel.UUID) (FinishPreparingCommand, error) {
	if err := errors.Join(
		preparingOrderID.Validate(),
		employeeID.Validate(),
	); err != nil {
		return FinishPreparingCommand{}, err
	}

	return FinishPreparingCommand{
		preparingOrderID: preparingOrderID,
		employeeID:       employeeID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishPreparingCommand) Validate() error {
	return c.guard.Validate(ErrFinishPreparingCommandIsNotConstructed)
}

// PreparingOrderID returns the identifier of the preparing task.
func (c FinishPreparingCommand) PreparingOrderID() kernel.UUID {
	return c.preparingOrderID
}

// EmployeeID returns the identifier of the reporting employee.
func (c FinishPreparingCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}
