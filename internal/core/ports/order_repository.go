package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository provides persistence operations for the Order aggregate.
// Get acquires a row-level lock when called inside a transaction so the
// read-validate-mutate cycle of a workflow operation is serialized against
// concurrent requests touching the same order.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order and its items. Permitted only for drafts;
	// the caller checks the status before deleting.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order by ID or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstFinishedWithoutPreparing retrieves the first order in Finished
	// status that has no preparing task yet, or an ObjectNotFoundError.
	GetFirstFinishedWithoutPreparing(ctx context.Context) (*order.Order, error)
}
