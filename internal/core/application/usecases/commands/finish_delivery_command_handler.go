package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/services"
)

// FinishDeliveryCommandHandler completes a delivery on behalf of its
// appointed courier. The delivery end time, the freed courier and the
// parent order's terminal status all commit in the same transaction.
type FinishDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewFinishDeliveryCommandHandler creates a handler for delivery completion.
func NewFinishDeliveryCommandHandler(uowFactory DeliveryUoWFactory) FinishDeliveryCommandHandler {
	return FinishDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the courier, the delivery and the parent order, and runs the
// completion through the registry. The registry's finish hook marks the
// order's delivery as finished, so a rejected completion never touches the
// order. Only the appointed courier may complete the delivery.
func (h FinishDeliveryCommandHandler) Handle(ctx context.Context, cmd FinishDeliveryCommand) error {
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

	courierRepo := uow.CourierRepository()
	courier, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	shipment, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, shipment.OrderID())
	if err != nil {
		return err
	}

	registry := services.NewAssignmentRegistry[*staff.Courier, *delivery.Delivery](
		func(*delivery.Delivery) error {
			return aggregate.MarkDeliveryFinished()
		},
	)
	if err = registry.Finish(courier, shipment); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, shipment); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courier); err != nil {
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
