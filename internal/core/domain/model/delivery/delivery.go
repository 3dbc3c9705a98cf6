// Package delivery contains the Delivery aggregate: the courier unit of work
// tied 1:1 to an order. A delivery is created only once the order's preparing
// task reached Done, and its completion marks the parent order
// DeliveryFinished.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when using an improperly
// initialized Delivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the courier task for a single order.
//
// Invariants:
//   - At most one courier per in-process delivery; an unavailable courier
//     cannot be appointed (enforced together with the courier's availability
//     flag by the assignment registry).
//   - Status moves strictly forward WaitingForDelivery -> InProcess -> Done.
//   - startTime is stamped when a courier is appointed, endTime when the
//     delivery completes.
type Delivery struct {
	id        kernel.UUID
	orderID   kernel.UUID
	courierID *kernel.UUID
	status    Status
	startTime *time.Time
	endTime   *time.Time
	guard     guard.ConstructorGuard
}

// NewDelivery creates a waiting delivery for the given order. The caller
// guarantees the order's preparing task reached Done; creation re-checks that
// inside its own transaction.
func NewDelivery(id kernel.UUID, orderID kernel.UUID) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	return &Delivery{
		id:      id,
		orderID: orderID,
		status:  WaitingForDelivery,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	startTime *time.Time,
	endTime *time.Time,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:        id,
		orderID:   orderID,
		courierID: courierID,
		status:    status,
		startTime: startTime,
		endTime:   endTime,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Delivery came from its constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the delivered order.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Assignee returns the appointed courier's ID, nil while waiting.
func (d *Delivery) Assignee() *kernel.UUID {
	return d.courierID
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// StartTime returns when the courier took the delivery, nil while waiting.
func (d *Delivery) StartTime() *time.Time {
	return d.startTime
}

// EndTime returns when the delivery completed, nil until Done.
func (d *Delivery) EndTime() *time.Time {
	return d.endTime
}

// Assign binds the delivery to a courier, moves it to InProcess and stamps
// the start time. Only a waiting delivery can be assigned.
func (d *Delivery) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if d.status != WaitingForDelivery {
		return errs.NewInvalidStatusErrorWithCause(
			"delivery",
			fmt.Errorf("%s is not a valid status to assign", d.status),
		)
	}

	now := time.Now().UTC()
	d.courierID = &courierID
	d.status = InProcess
	d.startTime = &now
	return nil
}

// Complete moves the delivery to Done and stamps the end time. The caller
// must be the appointed courier; anyone else fails with Forbidden regardless
// of status.
func (d *Delivery) Complete(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if d.courierID == nil || !d.courierID.IsEqual(courierID) {
		return errs.NewForbiddenErrorWithCause(
			"courier",
			fmt.Errorf("delivery %s is not assigned to courier %s", d.id, courierID),
		)
	}

	if d.status != InProcess {
		return errs.NewInvalidStatusErrorWithCause(
			"delivery",
			fmt.Errorf("%s is not a valid status to complete", d.status),
		)
	}

	now := time.Now().UTC()
	d.status = Done
	d.endTime = &now
	return nil
}
