// Package client contains the Client entity orders are placed for.
package client

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is the party an order is fulfilled for. The order workflow only
// needs its existence check, so the entity stays minimal.
type Client struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewClient creates a client.
func NewClient(id kernel.UUID, name string) (*Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Client{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreClient reconstructs a client from persistence.
func RestoreClient(id kernel.UUID, name string) (*Client, error) {
	return NewClient(id, name)
}

// Validate ensures the Client came from its constructor.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// ID returns the client identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}
