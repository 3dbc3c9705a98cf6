package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes draft orders. Deleting a draft undoes
// its stock reservations, so the item quantities flow back to the product
// rows in the same transaction that removes the order.
type DeleteOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for draft deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderStockUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order under lock, rejects anything past the draft status
// with ErrCannotDeleteOrder, restocks every item and deletes the order.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err = aggregate.EnsureCanDelete(); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		product, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			return err
		}

		if err = product.Restock(item.Quantity()); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, product); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
