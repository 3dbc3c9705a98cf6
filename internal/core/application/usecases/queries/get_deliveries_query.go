package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves a page of deliveries, optionally filtered by
// status. Page numbering is 1-based.
type GetDeliveriesQuery struct { //nolint:recvcheck //using for validation
	status *delivery.Status
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a query for a page of deliveries.
// A nil status means no filtering. A zero size falls back to the default
// page size.
func NewGetDeliveriesQuery(status *delivery.Status, page, size int) (GetDeliveriesQuery, error) {
	if size == 0 {
		size = defaultPageSize
	}

	if page < 1 {
		return GetDeliveriesQuery{}, errs.NewValueIsInvalidError("page")
	}
	if size < 1 || size > maxPageSize {
		return GetDeliveriesQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}

	return GetDeliveriesQuery{
		status: status,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetDeliveriesQuery) Status() *delivery.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetDeliveriesQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetDeliveriesQuery) Size() int {
	return q.size
}

// GetDeliveriesQueryResponse is the read model of a delivery.
type GetDeliveriesQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	CourierID *kernel.UUID
	Status    string
	StartTime *time.Time
	EndTime   *time.Time
}
