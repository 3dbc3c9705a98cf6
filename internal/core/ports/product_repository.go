package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository provides persistence operations for the stock ledger.
// Get locks the stock row inside a transaction so concurrent reservations of
// the same product serialize and the quantity can never go negative.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update saves a product's current quantity after a reservation or restock.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by ID or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
