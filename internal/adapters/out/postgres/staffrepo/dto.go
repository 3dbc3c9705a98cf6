// Package staffrepo provides data transfer objects and mapping functions for
// employee and courier persistence. Both share the same shape: an identity,
// a name and an is_active flag that clears while the worker holds a task.
package staffrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// EmployeeDTO represents the database structure for persisting employees.
type EmployeeDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	IsActive bool `gorm:"index"`
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

// CourierDTO represents the database structure for persisting couriers.
type CourierDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	IsActive bool `gorm:"index"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

func employeeFromDomain(aggregate *staff.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		IsActive: aggregate.IsActive(),
	}
}

func employeeToDomain(dto EmployeeDTO) (*staff.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreEmployee(id, dto.Name, dto.IsActive)
}

func courierFromDomain(aggregate *staff.Courier) CourierDTO {
	return CourierDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		IsActive: aggregate.IsActive(),
	}
}

func courierToDomain(dto CourierDTO) (*staff.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreCourier(id, dto.Name, dto.IsActive)
}
