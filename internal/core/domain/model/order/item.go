package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an ordered line of an Order: a product reference plus a snapshot of
// the product's name, unit and price taken at reservation time. The snapshot
// makes order totals stable even when the catalog changes later.
//
// Items are immutable once the enclosing order reserved its inventory.
type Item struct {
	productID kernel.UUID
	name      string
	quantity  int
	price     int64
	unit      string
	guard     guard.ConstructorGuard
}

// NewItem creates an order line. Quantity must be positive and price
// non-negative; name and unit are snapshots of the product at reservation
// time.
func NewItem(productID kernel.UUID, name string, quantity int, price int64, unit string) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}

	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}

	if quantity <= 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	if price < 0 {
		return Item{}, errs.NewValueIsInvalidError("price")
	}

	return Item{
		productID: productID,
		name:      name,
		quantity:  quantity,
		price:     price,
		unit:      unit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// maxItemQuantity bounds a single order line.
const maxItemQuantity = 1_000_000

// Validate ensures the Item came from NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot in minor currency units.
func (i Item) Price() int64 {
	return i.price
}

// Unit returns the measurement unit snapshot.
func (i Item) Unit() string {
	return i.unit
}
