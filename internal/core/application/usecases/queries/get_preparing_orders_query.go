package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/preparing"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPreparingOrdersQueryIsNotConstructed = errors.New(
	"GetPreparingOrdersQuery must be created via NewGetPreparingOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetPreparingOrdersQuery retrieves a page of preparing tasks, optionally
// filtered by status. Page numbering is 1-based.
type GetPreparingOrdersQuery struct { //nolint:recvcheck //using for validation
	status *preparing.Status
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewGetPreparingOrdersQuery creates a query for a page of preparing tasks.
// A nil status means no filtering. A zero size falls back to the default
// page size.
func NewGetPreparingOrdersQuery(status *preparing.Status, page, size int) (GetPreparingOrdersQuery, error) {
	if size == 0 {
		size = defaultPageSize
	}

	if page < 1 {
		return GetPreparingOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}
	if size < 1 || size > maxPageSize {
		return GetPreparingOrdersQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetPreparingOrdersQuery{}, err
		}
	}

	return GetPreparingOrdersQuery{
		status: status,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPreparingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPreparingOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetPreparingOrdersQuery) Status() *preparing.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetPreparingOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetPreparingOrdersQuery) Size() int {
	return q.size
}

// GetPreparingOrdersQueryResponse is the read model of a preparing task.
type GetPreparingOrdersQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	EmployeeID *kernel.UUID
	Status     string
}
