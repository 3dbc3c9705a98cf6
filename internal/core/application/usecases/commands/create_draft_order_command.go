package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateDraftOrderCommandIsNotConstructed = errors.New(
		"CreateDraftOrderCommand must be created via NewCreateDraftOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrLineQuantityIsInvalid = errors.New("order line quantity must be greater than 0")
)

// OrderLine is a single requested position of a draft order: which product
// and how many units to reserve. Name, price and unit are not part of the
// request, they are snapshotted from the catalog at reservation time.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateDraftOrderCommand represents a request to open a draft order for a
// client with one or more product lines.
//
// Example:
//
//	lines := []commands.OrderLine{{ProductID: productID, Quantity: 2}}
//	cmd, err := commands.NewCreateDraftOrderCommand(orderID, clientID, employeeID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid draft data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create draft: %w", err)
//	}
type CreateDraftOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientID   kernel.UUID
	employeeID kernel.UUID
	lines      []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateDraftOrderCommand creates a command to open a draft order.
// Validates that all identifiers are valid and each line requests a positive
// quantity of an existing product reference.
func NewCreateDraftOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	employeeID kernel.UUID,
	lines []OrderLine,
) (CreateDraftOrderCommand, error) {
	cmd := CreateDraftOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setEmployeeID(employeeID),
		cmd.setLines(lines),
	); err != nil {
		return CreateDraftOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDraftOrderCommandIsNotConstructed if validation fails.
func (c CreateDraftOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDraftOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new draft.
func (c CreateDraftOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the ordering client.
func (c CreateDraftOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// EmployeeID returns the identifier of the employee who takes the order.
func (c CreateDraftOrderCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Lines returns the requested product lines.
func (c CreateDraftOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateDraftOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDraftOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateDraftOrderCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *CreateDraftOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
