package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when attempting to create an order with no lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrCannotDeleteOrder is returned when deleting an order that already left
	// the Draft status. Deleting a non-draft would orphan its reserved stock.
	ErrCannotDeleteOrder = errors.New("order can be deleted only in Draft status")

	// ErrCannotAssignOrder is returned when document generation is requested for
	// an order that already left the Draft status, or when generation itself fails.
	ErrCannotAssignOrder = errors.New("order document cannot be generated")
)

// Order is the aggregate root of the fulfillment workflow. It owns the
// ordered item list and the forward-only status machine that gates assembly
// and delivery.
//
// Invariants:
//   - Items are immutable once the draft reserved its inventory; the
//     aggregate exposes only a copy of the list.
//   - Status transitions are monotonic; every transition method validates the
//     current status before mutating.
//   - An order references the client it was placed for and the employee who
//     created it; both are validated to exist at draft creation.
type Order struct {
	id           kernel.UUID
	clientID     kernel.UUID
	employeeID   kernel.UUID
	items        []Item
	status       Status
	orderDate    time.Time
	linkToFolder string
	guard        guard.ConstructorGuard
}

// NewOrder creates a draft order. Inventory reservation for the items happens
// in the enclosing use case, atomically with persisting the draft: the
// aggregate itself only guarantees the item list is non-empty and well formed.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	employeeID kernel.UUID,
	items []Item,
	orderDate time.Time,
) (*Order, error) {
	o := &Order{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setEmployeeID(employeeID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.orderDate = orderDate
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status and document folder reference. Unlike NewOrder it accepts any valid
// status.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	employeeID kernel.UUID,
	items []Item,
	status Status,
	orderDate time.Time,
	linkToFolder string,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setEmployeeID(employeeID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.orderDate = orderDate
	o.linkToFolder = linkToFolder
	return o, nil
}

// Validate ensures the Order instance was constructed through NewOrder or
// RestoreOrder. Call it when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the owning client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// EmployeeID returns the identifier of the employee who created the order.
func (o *Order) EmployeeID() kernel.UUID {
	return o.employeeID
}

// Items returns a copy of the ordered lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns the creation date of the order.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// LinkToFolder returns the document folder reference, empty until the order
// document was generated.
func (o *Order) LinkToFolder() string {
	return o.linkToFolder
}

// SignByEmployee records successful document generation and advances the
// order from Draft to SignedByEmployee, storing the generated document folder
// reference. Any other starting status fails with ErrCannotAssignOrder.
func (o *Order) SignByEmployee(linkToFolder string) error {
	if linkToFolder == "" {
		return errs.NewValueIsRequiredError("linkToFolder")
	}

	newStatus, err := o.status.SignByEmployee()
	if err != nil {
		return errors.Join(ErrCannotAssignOrder, err)
	}

	o.status = newStatus
	o.linkToFolder = linkToFolder
	return nil
}

// SignByClient advances the order from SignedByEmployee to SignedByClient.
func (o *Order) SignByClient() error {
	newStatus, err := o.status.SignByClient()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Finish advances the order from SignedByClient to Finished, making it
// eligible for assembly.
func (o *Order) Finish() error {
	newStatus, err := o.status.Finish()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDeliveryFinished is invoked by the delivery workflow when the courier
// completes the delivery. The delivery workflow guarantees the order reached
// Finished before a delivery could exist, so a failure here indicates a
// double completion.
func (o *Order) MarkDeliveryFinished() error {
	newStatus, err := o.status.FinishDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// EnsureCanDelete returns nil only while the order is still a draft.
// Deletion of a draft is the single case in which its reservation is reversed.
func (o *Order) EnsureCanDelete() error {
	if o.status != Draft {
		return ErrCannotDeleteOrder
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.clientID = id
	return nil
}

func (o *Order) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.employeeID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
