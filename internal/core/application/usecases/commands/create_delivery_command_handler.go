package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrNoPreparingOrderFound = errors.New("no completed preparing order found")

// CreateDeliveryCommandHandler opens deliveries for completed preparing
// tasks. The task is picked and the delivery created in one transaction.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryCreationUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryCreationUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle picks the first completed preparing task without a delivery and
// opens a delivery in the waiting status for its order. Returns
// ErrNoPreparingOrderFound when every completed task already has one.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	task, err := uow.PreparingOrderRepository().GetFirstDoneWithoutDelivery(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPreparingOrderFound
	}
	if err != nil {
		return err
	}

	shipment, err := delivery.NewDelivery(kernel.NewUUID(), task.OrderID())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, shipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
