package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

// CreateEmployeeCommand represents a request to register a warehouse employee.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewCreateEmployeeCommand creates a command to register an employee.
func NewCreateEmployeeCommand(employeeID kernel.UUID, name string) (CreateEmployeeCommand, error) {
	if err := employeeID.Validate(); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return CreateEmployeeCommand{
		employeeID: employeeID,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the unique identifier for the employee.
func (c CreateEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Name returns the employee name.
func (c CreateEmployeeCommand) Name() string {
	return c.name
}
