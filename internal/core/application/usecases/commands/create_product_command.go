package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to register a catalog product
// with its initial stock quantity.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	quantity  int
	price     int64
	unit      string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product.
// Field validation beyond the identifier is delegated to the aggregate.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	quantity int,
	price int64,
	unit string,
) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID: productID,
		name:      name,
		quantity:  quantity,
		price:     price,
		unit:      unit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Quantity returns the initial stock quantity.
func (c CreateProductCommand) Quantity() int {
	return c.quantity
}

// Price returns the unit price in minor currency units.
func (c CreateProductCommand) Price() int64 {
	return c.price
}

// Unit returns the unit of measure.
func (c CreateProductCommand) Unit() string {
	return c.unit
}
