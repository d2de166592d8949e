package repository

import (
	"context"

	"payment-api/models"

	"gorm.io/gorm"
)

// CustomerRepository defines data-access operations for customers. There is
// deliberately no Delete: customers are never removed.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Customer, error)
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository.
func NewGormCustomerRepository(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
