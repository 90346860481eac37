package orderrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Status mutations read the current row under a SELECT ... FOR UPDATE
// lock before judging the transition, so two concurrent mutations of the
// same order serialize at the database and the later one sees the earlier
// one's result.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored order, sorted by id.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus applies a direct transition against the row's current
// status and returns the updated order.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.OrderID,
	target order.Status,
) (*order.Order, error) {
	return r.mutate(ctx, id, func(stored *order.Order) error {
		return stored.ChangeStatus(target)
	})
}

// Cancel cancels the stored order.
func (r *GormOrderRepository) Cancel(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	return r.mutate(ctx, id, func(stored *order.Order) error {
		return stored.Cancel()
	})
}

// mutate loads the row under a row lock, runs fn against the restored
// aggregate and writes the new status back. The surrounding transaction
// holds the lock until commit.
func (r *GormOrderRepository) mutate(
	ctx context.Context,
	id kernel.OrderID,
	fn func(stored *order.Order) error,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	stored, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	if err = fn(stored); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Update("status", int(stored.Status()))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return stored, nil
}
