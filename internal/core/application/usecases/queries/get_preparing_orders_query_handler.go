package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/preparing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPreparingOrdersQueryHandler retrieves pages of preparing tasks from the
// database. Uses direct SQL queries for optimal read performance.
type GetPreparingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPreparingOrdersQueryHandler creates a handler for preparing task listing.
func NewGetPreparingOrdersQueryHandler(db *gorm.DB) GetPreparingOrdersQueryHandler {
	return GetPreparingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of preparing task read
// models ordered by identifier for stable paging.
func (h GetPreparingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPreparingOrdersQuery,
) ([]GetPreparingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_id,
			employee_id,
			status
		FROM preparing_orders
	`
	args := make([]any, 0, 3)
	if query.Status() != nil {
		sql += ` WHERE status = ?`
		args = append(args, int(*query.Status()))
	}
	sql += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, query.Size(), (query.Page()-1)*query.Size())

	tasks := make([]GetPreparingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var task GetPreparingOrdersQueryResponse
		var id, orderID uuid.UUID
		var employeeID *uuid.UUID
		var status int

		if err = rows.Scan(&id, &orderID, &employeeID, &status); err != nil {
			return nil, err
		}

		if task.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if task.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if employeeID != nil {
			eID, idErr := kernel.UUIDFromBytes((*employeeID)[:])
			if idErr != nil {
				return nil, idErr
			}
			task.EmployeeID = &eID
		}
		task.Status = preparing.Status(status).String()

		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
