// Package preparing contains the PreparingOrder aggregate: the assembly
// (picking) unit of work tied 1:1 to an order, assignable to one employee at
// a time. It is one of the two instantiations of the generic assignment
// pattern in services.
package preparing

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrPreparingOrderIsNotConstructed is returned when using an improperly
// initialized PreparingOrder.
var ErrPreparingOrderIsNotConstructed = errors.New(
	"PreparingOrder must be created via NewPreparingOrder constructor",
)

// PreparingOrder is the assembly task for a single order.
//
// Invariants:
//   - An employee holding an in-process task cannot be assigned a second one
//     until the first reaches Done (enforced together with the employee's
//     availability flag by the assignment registry).
//   - Status moves strictly forward WaitingForPreparing -> InProcess -> Done.
type PreparingOrder struct {
	id         kernel.UUID
	orderID    kernel.UUID
	employeeID *kernel.UUID
	status     Status
	guard      guard.ConstructorGuard
}

// NewPreparingOrder creates a waiting assembly task for the given order.
// The caller guarantees the order reached Finished; creation re-checks that
// inside its own transaction.
func NewPreparingOrder(id kernel.UUID, orderID kernel.UUID) (*PreparingOrder, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	return &PreparingOrder{
		id:      id,
		orderID: orderID,
		status:  WaitingForPreparing,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestorePreparingOrder reconstructs a task from persistence.
func RestorePreparingOrder(
	id kernel.UUID,
	orderID kernel.UUID,
	employeeID *kernel.UUID,
	status Status,
) (*PreparingOrder, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	if employeeID != nil {
		if err := employeeID.Validate(); err != nil {
			return nil, err
		}
	}

	return &PreparingOrder{
		id:         id,
		orderID:    orderID,
		employeeID: employeeID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PreparingOrder came from its constructor.
func (p *PreparingOrder) Validate() error {
	if p == nil {
		return ErrPreparingOrderIsNotConstructed
	}
	return p.guard.Validate(ErrPreparingOrderIsNotConstructed)
}

// ID returns the task identifier.
func (p *PreparingOrder) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order being assembled.
func (p *PreparingOrder) OrderID() kernel.UUID {
	return p.orderID
}

// Assignee returns the assigned employee's ID, nil while waiting.
func (p *PreparingOrder) Assignee() *kernel.UUID {
	return p.employeeID
}

// Status returns the current task status.
func (p *PreparingOrder) Status() Status {
	return p.status
}

// Assign binds the task to an employee and moves it to InProcess.
// Only a waiting task can be assigned.
func (p *PreparingOrder) Assign(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	if p.status != WaitingForPreparing {
		return errs.NewInvalidStatusErrorWithCause(
			"preparing order",
			fmt.Errorf("%s is not a valid status to assign", p.status),
		)
	}

	p.employeeID = &employeeID
	p.status = InProcess
	return nil
}

// Complete moves the task to Done. The caller must be the assigned employee;
// anyone else fails with Forbidden regardless of status.
func (p *PreparingOrder) Complete(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	if p.employeeID == nil || !p.employeeID.IsEqual(employeeID) {
		return errs.NewForbiddenErrorWithCause(
			"employee",
			fmt.Errorf("preparing order %s is not assigned to employee %s", p.id, employeeID),
		)
	}

	if p.status != InProcess {
		return errs.NewInvalidStatusErrorWithCause(
			"preparing order",
			fmt.Errorf("%s is not a valid status to complete", p.status),
		)
	}

	p.status = Done
	return nil
}
