// Package staff contains the worker aggregates of the fulfillment system:
// the warehouse Employee who assembles orders and the Courier who delivers
// them. Both share the single-active-assignment rule: a worker holds at most
// one task in process, tracked by the isActive availability flag.
package staff

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrNameIsRequired is returned when attempting to create a worker without a name.
var ErrNameIsRequired = errs.NewValueIsRequiredError("name")

// worker carries the identity and availability state shared by Employee and
// Courier. isActive means "available for a new assignment".
type worker struct {
	id       kernel.UUID
	name     string
	isActive bool
	guard    guard.ConstructorGuard
}

func newWorker(id kernel.UUID, name string, isActive bool) (worker, error) {
	if err := id.Validate(); err != nil {
		return worker{}, err
	}

	if name == "" {
		return worker{}, ErrNameIsRequired
	}

	return worker{
		id:       id,
		name:     name,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ID returns the worker identifier.
func (w *worker) ID() kernel.UUID {
	return w.id
}

// Name returns the worker's display name.
func (w *worker) Name() string {
	return w.name
}

// IsActive reports whether the worker is available for a new assignment.
func (w *worker) IsActive() bool {
	return w.isActive
}

// MarkBusy claims the worker for a task. A worker already tied to an
// in-process task cannot be claimed again until released.
func (w *worker) MarkBusy() error {
	if !w.isActive {
		return errs.NewInvalidStatusErrorWithCause(
			"worker",
			fmt.Errorf("worker %s already has a task in process", w.id),
		)
	}

	w.isActive = false
	return nil
}

// MarkFree releases the worker after the task reached its terminal status.
func (w *worker) MarkFree() {
	w.isActive = true
}

// ErrEmployeeIsNotConstructed is returned when using an improperly
// initialized Employee.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

// Employee is the warehouse worker who assembles (prepares) orders.
type Employee struct {
	worker
}

// NewEmployee creates an available employee.
func NewEmployee(id kernel.UUID, name string) (*Employee, error) {
	w, err := newWorker(id, name, true)
	if err != nil {
		return nil, err
	}
	return &Employee{worker: w}, nil
}

// RestoreEmployee reconstructs an employee from persistence, including the
// availability flag.
func RestoreEmployee(id kernel.UUID, name string, isActive bool) (*Employee, error) {
	w, err := newWorker(id, name, isActive)
	if err != nil {
		return nil, err
	}
	return &Employee{worker: w}, nil
}

// Validate ensures the Employee came from its constructor.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// ErrCourierIsNotConstructed is returned when using an improperly
// initialized Courier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier is the delivery worker. A courier flagged unavailable cannot be
// appointed to a new delivery.
type Courier struct {
	worker
}

// NewCourier creates an available courier.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	w, err := newWorker(id, name, true)
	if err != nil {
		return nil, err
	}
	return &Courier{worker: w}, nil
}

// RestoreCourier reconstructs a courier from persistence, including the
// availability flag.
func RestoreCourier(id kernel.UUID, name string, isActive bool) (*Courier, error) {
	w, err := newWorker(id, name, isActive)
	if err != nil {
		return nil, err
	}
	return &Courier{worker: w}, nil
}

// Validate ensures the Courier came from its constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}
