package repository

import (
	"context"

	"payment-api/models"

	"gorm.io/gorm"
)

// SettlementRepository is the append-only ledger of capture events.
type SettlementRepository interface {
	Append(ctx context.Context, settlement *models.Settlement) error
	FindLatestByOrderID(ctx context.Context, orderID string) (*models.Settlement, error)
	SumSettled(ctx context.Context) (float64, error)
}

// GormSettlementRepository implements SettlementRepository using GORM.
type GormSettlementRepository struct {
	db *gorm.DB
}

// NewGormSettlementRepository creates a new GormSettlementRepository.
func NewGormSettlementRepository(db *gorm.DB) SettlementRepository {
	return &GormSettlementRepository{db: db}
}

func (r *GormSettlementRepository) Append(ctx context.Context, settlement *models.Settlement) error {
	return r.db.WithContext(ctx).Create(settlement).Error
}

func (r *GormSettlementRepository) FindLatestByOrderID(ctx context.Context, orderID string) (*models.Settlement, error) {
	var s models.Settlement
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("settlement_date DESC, settlement_id DESC").
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSettlementRepository) SumSettled(ctx context.Context) (float64, error) {
	var total float64
	// COALESCE keeps the sum at 0 for an empty ledger instead of NULL.
	if err := r.db.WithContext(ctx).
		Model(&models.Settlement{}).
		Select("COALESCE(SUM(settled_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
