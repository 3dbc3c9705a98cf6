package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAppointPickerCommandIsNotConstructed = errors.New(
	"AppointPickerCommand must be created via NewAppointPickerCommand constructor",
)

// AppointPickerCommand represents appointing a warehouse employee to a
// waiting preparing task.
type AppointPickerCommand struct { //nolint:recvcheck //using for validation
	preparingOrderID kernel.UUID
	employeeID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewAppointPickerCommand creates a command to appoint an employee to a
// preparing task.
func NewAppointPickerCommand(preparingOrderID, employeeID kernel.UUID) (AppointPickerCommand, error) {
	if err := errors.Join(
		preparingOrderID.Validate(),
		employeeID.Validate(),
	); err != nil {
		return AppointPickerCommand{}, err
	}

	return AppointPickerCommand{
		preparingOrderID: preparingOrderID,
		employeeID:       employeeID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AppointPickerCommand) Validate() error {
	return c.guard.Validate(ErrAppointPickerCommandIsNotConstructed)
}

// PreparingOrderID returns the identifier of the preparing task.
func (c AppointPickerCommand) PreparingOrderID() kernel.UUID {
	return c.preparingOrderID
}

// EmployeeID returns the identifier of the employee to appoint.
func (c AppointPickerCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}
