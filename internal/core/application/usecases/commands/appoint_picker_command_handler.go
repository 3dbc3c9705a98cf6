package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/preparing"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/services"
)

// AppointPickerCommandHandler assigns a warehouse employee to a preparing
// task. Both rows are loaded under lock, so two concurrent appointments of
// the same employee serialize and the second one fails on the busy flag.
type AppointPickerCommandHandler struct {
	uowFactory PreparingUoWFactory
}

// NewAppointPickerCommandHandler creates a handler for picker appointment.
func NewAppointPickerCommandHandler(uowFactory PreparingUoWFactory) AppointPickerCommandHandler {
	return AppointPickerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the employee and the preparing task and runs the assignment
// through the registry: the employee is marked busy and the task moves to in
// process with the employee recorded as assignee.
func (h AppointPickerCommandHandler) Handle(ctx context.Context, cmd AppointPickerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employeeRepo := uow.EmployeeRepository()
	employee, err := employeeRepo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	preparingRepo := uow.PreparingOrderRepository()
	task, err := preparingRepo.Get(ctx, cmd.PreparingOrderID())
	if err != nil {
		return err
	}

	registry := services.NewAssignmentRegistry[*staff.Employee, *preparing.PreparingOrder](nil)
	if err = registry.Appoint(employee, task); err != nil {
		return err
	}

	if err = preparingRepo.Update(ctx, task); err != nil {
		return err
	}

	if err = employeeRepo.Update(ctx, employee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
