package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/staff"
)

// EmployeeRepository provides persistence operations for warehouse employees.
// Get locks the row inside a transaction so two concurrent appointments of
// the same employee cannot both observe the worker as available.
type EmployeeRepository interface {
	Add(ctx context.Context, aggregate *staff.Employee) error
	Update(ctx context.Context, aggregate *staff.Employee) error
	Get(ctx context.Context, id kernel.UUID) (*staff.Employee, error)
}

// CourierRepository provides persistence operations for couriers, with the
// same locking contract as EmployeeRepository.
type CourierRepository interface {
	Add(ctx context.Context, aggregate *staff.Courier) error
	Update(ctx context.Context, aggregate *staff.Courier) error
	Get(ctx context.Context, id kernel.UUID) (*staff.Courier, error)
}
