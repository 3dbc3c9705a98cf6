package commands

import (
	"context"
)

// FinishOrderCommandHandler applies the finish transition to a signed order.
type FinishOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinishOrderCommandHandler creates a handler for finishing orders.
func NewFinishOrderCommandHandler(uowFactory OrderUoWFactory) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order under lock and moves it from signed-by-client to
// finished. Once committed the order becomes visible to preparing task
// creation.
func (h FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) error {
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

	if err = aggregate.Finish(); err != nil {
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
