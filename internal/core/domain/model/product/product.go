// Package product contains the inventory side of the fulfillment core: a
// product with a non-negative available quantity that is decremented by
// reservations at order-draft creation and restored only when a draft is
// deleted.
package product

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly
	// initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product is the stock-ledger aggregate. Its single hard invariant is that
// the available quantity never goes negative: a reservation exceeding the
// available quantity is rejected, not clamped.
type Product struct {
	id       kernel.UUID
	name     string
	quantity int
	price    int64
	unit     string
	guard    guard.ConstructorGuard
}

// NewProduct creates a product with an initial available quantity.
func NewProduct(id kernel.UUID, name string, quantity int, price int64, unit string) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setQuantity(quantity),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.unit = unit
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, name string, quantity int, price int64, unit string) (*Product, error) {
	return NewProduct(id, name, quantity, price, unit)
}

// Validate ensures the Product came from its constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Quantity returns the currently available quantity.
func (p *Product) Quantity() int {
	return p.quantity
}

// Price returns the unit price in minor currency units.
func (p *Product) Price() int64 {
	return p.price
}

// Unit returns the measurement unit.
func (p *Product) Unit() string {
	return p.unit
}

// Reserve decrements the available quantity by the requested amount.
// Reserving exactly the remaining stock is allowed; requesting more fails
// with an InsufficientStock error and leaves the quantity unchanged.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, p.quantity)
	}

	if quantity > p.quantity {
		return errs.NewInsufficientStockError(p.id.String(), quantity, p.quantity)
	}

	p.quantity -= quantity
	return nil
}

// Restock returns a previously reserved amount to the shelf. It is invoked
// only when a draft order is deleted.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	p.quantity += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}
