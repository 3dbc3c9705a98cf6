package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAppointCourierCommandIsNotConstructed = errors.New(
	"AppointCourierCommand must be created via NewAppointCourierCommand constructor",
)

// AppointCourierCommand represents appointing a courier to a waiting delivery.
type AppointCourierCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAppointCourierCommand creates a command to appoint a courier to a delivery.
func NewAppointCourierCommand(deliveryID, courierID kernel.UUID) (AppointCourierCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		courierID.Validate(),
	); err != nil {
		return AppointCourierCommand{}, err
	}

	return AppointCourierCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AppointCourierCommand) Validate() error {
	return c.guard.Validate(ErrAppointCourierCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery.
func (c AppointCourierCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the identifier of the courier to appoint.
func (c AppointCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
