package repository

import (
	"context"

	"payment-api/models"

	"gorm.io/gorm"
)

// AuthorizationRepository is the append-only ledger of gateway decisions.
// Rows are only ever inserted; "latest" is defined by audit_date with auth_id
// as the tie-break so ordering stays deterministic.
type AuthorizationRepository interface {
	Append(ctx context.Context, auth *models.Authorization) error
	FindLatestByOrderID(ctx context.Context, orderID string) (*models.Authorization, error)
	FindByOrderID(ctx context.Context, orderID string) ([]models.Authorization, error)
}

// GormAuthorizationRepository implements AuthorizationRepository using GORM.
type GormAuthorizationRepository struct {
	db *gorm.DB
}

// NewGormAuthorizationRepository creates a new GormAuthorizationRepository.
func NewGormAuthorizationRepository(db *gorm.DB) AuthorizationRepository {
	return &GormAuthorizationRepository{db: db}
}

func (r *GormAuthorizationRepository) Append(ctx context.Context, auth *models.Authorization) error {
	return r.db.WithContext(ctx).Create(auth).Error
}

func (r *GormAuthorizationRepository) FindLatestByOrderID(ctx context.Context, orderID string) (*models.Authorization, error) {
	var a models.Authorization
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("audit_date DESC, auth_id DESC").
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAuthorizationRepository) FindByOrderID(ctx context.Context, orderID string) ([]models.Authorization, error) {
	var auths []models.Authorization
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("audit_date DESC, auth_id DESC").
		Find(&auths).Error; err != nil {
		return nil, err
	}
	return auths, nil
}
