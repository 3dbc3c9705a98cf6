// Package preparingrepo provides data transfer objects and mapping functions
// for warehouse preparing task persistence.
package preparingrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/preparing"

	"github.com/google/uuid"
)

// PreparingOrderDTO represents the database structure for persisting
// preparing tasks. The order_id column is unique: one task per order.
type PreparingOrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	Status     int        `gorm:"index"`
}

// TableName specifies the database table name for preparing tasks.
func (PreparingOrderDTO) TableName() string {
	return "preparing_orders"
}

func fromDomain(aggregate *preparing.PreparingOrder) PreparingOrderDTO {
	var employeeID *uuid.UUID
	if id := aggregate.Assignee(); id != nil {
		raw := id.Bytes()
		employeeID = &raw
	}

	return PreparingOrderDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		EmployeeID: employeeID,
		Status:     int(aggregate.Status()),
	}
}

func toDomain(dto PreparingOrderDTO) (*preparing.PreparingOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var employeeID *kernel.UUID
	if dto.EmployeeID != nil {
		eID, employeeErr := kernel.UUIDFromBytes((*dto.EmployeeID)[:])
		if employeeErr != nil {
			return nil, employeeErr
		}
		employeeID = &eID
	}

	return preparing.RestorePreparingOrder(id, orderID, employeeID, preparing.Status(dto.Status))
}
