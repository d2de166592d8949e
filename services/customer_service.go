package services

import (
	"context"
	"errors"
	"fmt"

	"payment-api/apierrors"
	"payment-api/models"
	"payment-api/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CustomerService manages customer records. Customers are immutable once
// created and can never be deleted.
type CustomerService interface {
	Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *apierrors.Error)
	GetByID(ctx context.Context, id uint) (*models.Customer, *apierrors.Error)
	List(ctx context.Context, limit, offset int) ([]models.Customer, *apierrors.Error)
}

type customerServiceImpl struct {
	repo   repository.CustomerRepository
	logger *zap.Logger
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repository.CustomerRepository, logger *zap.Logger) CustomerService {
	return &customerServiceImpl{repo: repo, logger: logger}
}

func (s *customerServiceImpl) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *apierrors.Error) {
	if req.Name == "" {
		return nil, apierrors.Validation("name is required")
	}

	customer := &models.Customer{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		s.logger.Error("Failed to create customer", zap.String("name", req.Name), zap.Error(err))
		return nil, apierrors.Storage(err)
	}

	s.logger.Info("Customer created", zap.Uint("customer_id", customer.ID))
	return customer, nil
}

func (s *customerServiceImpl) GetByID(ctx context.Context, id uint) (*models.Customer, *apierrors.Error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound(fmt.Sprintf("customer %d not found", id))
		}
		return nil, apierrors.Storage(err)
	}
	return customer, nil
}

func (s *customerServiceImpl) List(ctx context.Context, limit, offset int) ([]models.Customer, *apierrors.Error) {
	customers, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list customers", zap.Error(err))
		return nil, apierrors.Storage(err)
	}
	return customers, nil
}
