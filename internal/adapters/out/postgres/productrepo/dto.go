// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence. The quantity column is the live stock
// counter that reservations and restocks mutate under row locks.
package productrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Quantity int
	Price    int64
	Unit     string
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Quantity: aggregate.Quantity(),
		Price:    aggregate.Price(),
		Unit:     aggregate.Unit(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Quantity, dto.Price, dto.Unit)
}
