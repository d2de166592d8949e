package repository

import (
	"context"

	"payment-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository defines data-access operations for orders. Upsert is keyed
// on order_id: re-posting the same id replaces the prior row, last write wins.
type OrderRepository interface {
	Upsert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	FindAll(ctx context.Context, limit, offset int, minAmount float64) ([]models.Order, error)
	FindRecent(ctx context.Context, n int) ([]models.Order, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Upsert(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context, limit, offset int, minAmount float64) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.WithContext(ctx).Model(&models.Order{})
	if minAmount > 0 {
		query = query.Where("order_amount >= ?", minAmount)
	}
	if err := query.
		Offset(offset).Limit(limit).
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindRecent(ctx context.Context, n int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Limit(n).
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}
