package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a client.
func NewCreateClientCommand(clientID kernel.UUID, name string) (CreateClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		clientID: clientID,
		name:     name,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the unique identifier for the client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the client name.
func (c CreateClientCommand) Name() string {
	return c.name
}
