package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrFinishDeliveryCommandIsNotConstructed = errors.New(
	"FinishDeliveryCommand must be created via NewFinishDeliveryCommand constructor",
)

// FinishDeliveryCommand represents the appointed courier reporting a
// delivery as handed over to the client.
type FinishDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishDeliveryCommand creates a command to complete a delivery.
func NewFinishDeliveryCommand(deliveryID, courierID kernel.UUID) (FinishDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		courierID.Validate(),
	); err != nil {
		return FinishDeliveryCommand{}, err
	}

	return FinishDeliveryCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFinishDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery.
func (c FinishDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the identifier of the reporting courier.
func (c FinishDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}
