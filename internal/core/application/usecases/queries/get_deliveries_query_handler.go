package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler retrieves pages of deliveries from the database.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery listing.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns one page of delivery read models
// ordered by identifier for stable paging.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_id,
			courier_id,
			status,
			start_time,
			end_time
		FROM deliveries
	`
	args := make([]any, 0, 3)
	if query.Status() != nil {
		sql += ` WHERE status = ?`
		args = append(args, int(*query.Status()))
	}
	sql += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, query.Size(), (query.Page()-1)*query.Size())

	deliveries := make([]GetDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shipment GetDeliveriesQueryResponse
		var id, orderID uuid.UUID
		var courierID *uuid.UUID
		var status int

		err = rows.Scan(&id, &orderID, &courierID, &status, &shipment.StartTime, &shipment.EndTime)
		if err != nil {
			return nil, err
		}

		if shipment.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if shipment.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if courierID != nil {
			cID, idErr := kernel.UUIDFromBytes((*courierID)[:])
			if idErr != nil {
				return nil, idErr
			}
			shipment.CourierID = &cID
		}
		shipment.Status = delivery.Status(status).String()

		deliveries = append(deliveries, shipment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
