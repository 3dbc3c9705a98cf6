package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/staff"
)

// CreateEmployeeCommandHandler handles warehouse employee registration.
// New employees start free and become assignable to preparing tasks.
type CreateEmployeeCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewCreateEmployeeCommandHandler creates a handler for employee registration.
func NewCreateEmployeeCommandHandler(uowFactory StaffUoWFactory) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the employee through its constructor and persists it.
func (h CreateEmployeeCommandHandler) Handle(ctx context.Context, cmd CreateEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := staff.NewEmployee(cmd.EmployeeID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EmployeeRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
