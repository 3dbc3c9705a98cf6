package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/services"
)

// AppointCourierCommandHandler assigns a courier to a delivery. The delivery
// start time is stamped by the aggregate when the assignment succeeds.
type AppointCourierCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAppointCourierCommandHandler creates a handler for courier appointment.
func NewAppointCourierCommandHandler(uowFactory DeliveryUoWFactory) AppointCourierCommandHandler {
	return AppointCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the courier and the delivery and runs the assignment through
// the registry: the courier is marked busy and the delivery moves to in
// process with the start time recorded.
func (h AppointCourierCommandHandler) Handle(ctx context.Context, cmd AppointCourierCommand) error {
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

	registry := services.NewAssignmentRegistry[*staff.Courier, *delivery.Delivery](nil)
	if err = registry.Appoint(courier, shipment); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, shipment); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
