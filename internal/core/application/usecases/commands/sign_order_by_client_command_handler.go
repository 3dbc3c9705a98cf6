package commands

import (
	"context"
)

// SignOrderByClientCommandHandler applies the client signature transition.
type SignOrderByClientCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSignOrderByClientCommandHandler creates a handler for client countersigning.
func NewSignOrderByClientCommandHandler(uowFactory OrderUoWFactory) SignOrderByClientCommandHandler {
	return SignOrderByClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order under lock and moves it from signed-by-employee to
// signed-by-client. Any other current status fails the transition.
func (h SignOrderByClientCommandHandler) Handle(ctx context.Context, cmd SignOrderByClientCommand) error {
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

	if err = aggregate.SignByClient(); err != nil {
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
