package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/client"
	"fulfillment/internal/core/domain/model/kernel"
)

// ClientRepository provides persistence operations for clients.
type ClientRepository interface {
	Add(ctx context.Context, aggregate *client.Client) error
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
