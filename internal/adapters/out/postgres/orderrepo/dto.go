// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders persist as one row plus one row per snapshotted
// item line.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status for the preparing task creation scan.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID      `gorm:"type:uuid;index"`
	EmployeeID   uuid.UUID      `gorm:"type:uuid;index"`
	Status       int            `gorm:"index"`
	OrderDate    time.Time      ``
	LinkToFolder string         ``
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one snapshotted item line of an order. The name,
// price and unit are copied from the catalog at reservation time and never
// change afterwards.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Quantity  int
	Price     int64
	Unit      string
}

// TableName specifies the database table name for order item lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Unit:      item.Unit(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ClientID:     aggregate.ClientID().Bytes(),
		EmployeeID:   aggregate.EmployeeID().Bytes(),
		Status:       int(aggregate.Status()),
		OrderDate:    aggregate.OrderDate(),
		LinkToFolder: aggregate.LinkToFolder(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, including its item lines.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Name, itemDTO.Quantity, itemDTO.Price, itemDTO.Unit)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		clientID,
		employeeID,
		items,
		order.Status(dto.Status),
		dto.OrderDate,
		dto.LinkToFolder,
	)
}
