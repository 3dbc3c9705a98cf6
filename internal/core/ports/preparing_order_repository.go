package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/preparing"
)

// PreparingOrderRepository provides persistence operations for preparing
// tasks. Get locks the task row inside a transaction.
type PreparingOrderRepository interface {
	Add(ctx context.Context, aggregate *preparing.PreparingOrder) error
	Update(ctx context.Context, aggregate *preparing.PreparingOrder) error
	Get(ctx context.Context, id kernel.UUID) (*preparing.PreparingOrder, error)

	// GetByOrderID retrieves the (single) preparing task of an order or an
	// ObjectNotFoundError.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*preparing.PreparingOrder, error)

	// GetFirstDoneWithoutDelivery retrieves the first completed preparing
	// task whose order has no delivery yet, or an ObjectNotFoundError.
	GetFirstDoneWithoutDelivery(ctx context.Context) (*preparing.PreparingOrder, error)
}
