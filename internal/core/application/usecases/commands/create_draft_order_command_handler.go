package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// CreateDraftOrderCommandHandler handles the business logic for draft creation.
// Reserves stock for every requested line and persists the draft in a single
// transaction: either all lines are reserved and the order exists, or nothing
// changes.
type CreateDraftOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateDraftOrderCommandHandler creates a handler for draft creation.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCreateDraftOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateDraftOrderCommandHandler {
	return CreateDraftOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft creation command.
// Verifies the client and employee exist, then walks the requested lines:
// each product row is loaded under lock, its stock reserved, and an order
// item snapshotted from the current catalog data. An insufficient reservation
// on any line aborts the whole draft.
func (h CreateDraftOrderCommandHandler) Handle(ctx context.Context, cmd CreateDraftOrderCommand) error {
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

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	if _, err := uow.EmployeeRepository().Get(ctx, cmd.EmployeeID()); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		product, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return err
		}

		if err = product.Reserve(line.Quantity); err != nil {
			return err
		}

		item, err := order.NewItem(product.ID(), product.Name(), line.Quantity, product.Price(), product.Unit())
		if err != nil {
			return err
		}
		items = append(items, item)

		if err = productRepo.Update(ctx, product); err != nil {
			return err
		}
	}

	draft, err := order.NewOrder(cmd.OrderID(), cmd.ClientID(), cmd.EmployeeID(), items, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, draft); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
