package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/preparing"
	"fulfillment/internal/pkg/errs"
)

var ErrNoOrderFound = errors.New("no order found")

// CreatePreparingOrderCommandHandler opens preparing tasks for finished
// orders. An order is picked and its task created in one transaction, so a
// concurrent run cannot open a second task for the same order.
//
// Example:
//
//	handler := NewCreatePreparingOrderCommandHandler(uowFactory)
//	cmd := NewCreatePreparingOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrderFound) {
//	    log.Println("Nothing to prepare")
//	}
type CreatePreparingOrderCommandHandler struct {
	uowFactory PreparingCreationUoWFactory
}

// NewCreatePreparingOrderCommandHandler creates a handler for preparing task creation.
func NewCreatePreparingOrderCommandHandler(
	uowFactory PreparingCreationUoWFactory,
) CreatePreparingOrderCommandHandler {
	return CreatePreparingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle picks the first finished order without a preparing task and opens a
// task for it in the waiting status. Returns ErrNoOrderFound when every
// finished order already has one.
func (h CreatePreparingOrderCommandHandler) Handle(ctx context.Context, cmd CreatePreparingOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().GetFirstFinishedWithoutPreparing(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	task, err := preparing.NewPreparingOrder(kernel.NewUUID(), aggregate.ID())
	if err != nil {
		return err
	}

	if err = uow.PreparingOrderRepository().Add(ctx, task); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
