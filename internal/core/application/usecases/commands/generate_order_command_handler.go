package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// GenerateOrderCommandHandler signs a draft order on behalf of the employee.
// Document generation and the status transition commit together: a failed
// generation leaves the order in draft, and a failed transition does not
// persist a link to half-written documents.
type GenerateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	generator  ports.DocumentGenerator
}

// NewGenerateOrderCommandHandler creates a handler for employee signing.
// Requires an OrderUoWFactory and a DocumentGenerator for the order papers.
func NewGenerateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	generator ports.DocumentGenerator,
) GenerateOrderCommandHandler {
	return GenerateOrderCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the employee signing command.
// Loads the order under lock, generates its document folder and applies the
// draft to signed-by-employee transition. A generation failure surfaces as
// ErrCannotAssignOrder with the underlying cause attached.
func (h GenerateOrderCommandHandler) Handle(ctx context.Context, cmd GenerateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	linkToFolder, err := h.generator.Generate(ctx, aggregate)
	if err != nil {
		return errors.Join(order.ErrCannotAssignOrder, err)
	}

	if err = aggregate.SignByEmployee(linkToFolder); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
