package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// DocumentGenerator renders the printable order form that the employee and
// client sign. It is an external, fallible collaborator: generation failure
// surfaces to the order workflow as a CannotAssignOrder-class error and the
// order stays in Draft. No retry is attempted here; retry policy belongs to
// the caller.
type DocumentGenerator interface {
	// Generate produces the order document and returns the folder reference
	// to store on the order.
	Generate(ctx context.Context, aggregate *order.Order) (string, error)
}
