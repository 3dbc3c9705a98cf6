package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/preparing"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/services"
)

// FinishPreparingCommandHandler completes a preparing task on behalf of its
// appointed employee and frees the employee for the next task. Only the
// assignee may complete the task; anyone else gets a forbidden error.
type FinishPreparingCommandHandler struct {
	uowFactory PreparingUoWFactory
}

// NewFinishPreparingCommandHandler creates a handler for preparing completion.
func NewFinishPreparingCommandHandler(uowFactory PreparingUoWFactory) FinishPreparingCommandHandler {
	return FinishPreparingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the employee and the preparing task and runs the completion
// through the registry: the task moves to done and the employee is marked
// free again. Once committed the task becomes visible to delivery creation.
func (h FinishPreparingCommandHandler) Handle(ctx context.Context, cmd FinishPreparingCommand) error {
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
	if err = registry.Finish(employee, task); err != nil {
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
