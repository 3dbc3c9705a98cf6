package preparingrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/preparing"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPreparingOrderRepository implements PreparingOrderRepository using GORM.
type GormPreparingOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPreparingOrderRepository creates a new GORM preparing task repository.
func NewGormPreparingOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPreparingOrderRepository {
	return &GormPreparingOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new preparing task to the database. The unique index on
// order_id rejects a second task for the same order.
func (r *GormPreparingOrderRepository) Add(ctx context.Context, aggregate *preparing.PreparingOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing preparing task.
func (r *GormPreparingOrderRepository) Update(ctx context.Context, aggregate *preparing.PreparingOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PreparingOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("employee_id", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a preparing task by ID, locked for update so concurrent
// appointment and completion of the same task serialize on the row.
func (r *GormPreparingOrderRepository) Get(ctx context.Context, id kernel.UUID) (*preparing.PreparingOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PreparingOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("preparingOrderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the preparing task of an order.
func (r *GormPreparingOrderRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*preparing.PreparingOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PreparingOrderDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstDoneWithoutDelivery retrieves the first completed preparing task
// whose order has no delivery yet, locked for update so two concurrent
// delivery creation runs cannot pick the same task.
func (r *GormPreparingOrderRepository) GetFirstDoneWithoutDelivery(
	ctx context.Context,
) (*preparing.PreparingOrder, error) {
	var dto PreparingOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ? AND order_id NOT IN (SELECT order_id FROM deliveries)", int(preparing.Done)).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("preparingOrderID", "first done without delivery")
		}
		return nil, err
	}

	return toDomain(dto)
}
