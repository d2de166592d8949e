package services

import (
	"context"
	"errors"
	"time"

	"payment-api/apierrors"
	"payment-api/models"
	"payment-api/repository"
	"payment-api/simulator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentService drives the order lifecycle: checkout (simulated
// authorization), settlement, order detail and listing.
type PaymentService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *apierrors.Error)
	Settle(ctx context.Context, req *models.SettleRequest) (*models.SettleResponse, *apierrors.Error)
	GetOrderDetail(ctx context.Context, orderID string) (*models.OrderDetail, *apierrors.Error)
	ListOrders(ctx context.Context, limit, offset int, minAmount float64) ([]models.Order, *apierrors.Error)
}

type paymentServiceImpl struct {
	orderRepo      repository.OrderRepository
	authRepo       repository.AuthorizationRepository
	settlementRepo repository.SettlementRepository
	sim            *simulator.Checkout
	minOrderAmount float64 // listing policy; 0 disables the filter
	logger         *zap.Logger
}

// NewPaymentService creates a new PaymentService. minOrderAmount is the
// deployment's order-listing floor (0 turns the filter off).
func NewPaymentService(
	orderRepo repository.OrderRepository,
	authRepo repository.AuthorizationRepository,
	settlementRepo repository.SettlementRepository,
	sim *simulator.Checkout,
	minOrderAmount float64,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		orderRepo:      orderRepo,
		authRepo:       authRepo,
		settlementRepo: settlementRepo,
		sim:            sim,
		minOrderAmount: minOrderAmount,
		logger:         logger,
	}
}

// statusFor maps a gateway outcome onto the order's initial state.
func statusFor(outcome simulator.Outcome) string {
	switch outcome {
	case simulator.OutcomeSuccess:
		return models.OrderStatusAuthorized
	case simulator.OutcomeInsufficientFunds:
		return models.OrderStatusDeclined
	default:
		return models.OrderStatusError
	}
}

// Checkout runs the simulated gateway once, upserts the order with the
// resulting status and appends the authorization record. The two writes are
// not wrapped in a transaction; a failure between them surfaces immediately.
func (s *paymentServiceImpl) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *apierrors.Error) {
	if req.OrderID == "" || req.CustomerID == 0 || req.Amount == 0 {
		return nil, apierrors.Validation("order_id, customer_id and amount are required")
	}

	last4 := req.Last4
	if last4 == "" {
		last4 = models.DefaultLast4
	}

	outcome := s.sim.Pick()
	status := statusFor(outcome)
	now := time.Now()

	order := &models.Order{
		OrderID:    req.OrderID,
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Status:     status,
		OrderDate:  now,
	}
	if err := s.orderRepo.Upsert(ctx, order); err != nil {
		s.logger.Error("Failed to upsert order", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, apierrors.Storage(err)
	}

	auth := &models.Authorization{
		AuthID:     uuid.New(),
		OrderID:    req.OrderID,
		ResponseID: string(outcome),
		AuthAmount: req.Amount,
		Last4:      last4,
		AuditDate:  now,
	}
	if err := s.authRepo.Append(ctx, auth); err != nil {
		s.logger.Error("Failed to append authorization", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, apierrors.Storage(err)
	}

	s.logger.Info("Checkout processed",
		zap.String("order_id", req.OrderID),
		zap.String("result", string(outcome)),
		zap.String("status", status),
	)

	return &models.CheckoutResponse{
		OrderID: req.OrderID,
		Result:  string(outcome),
		Status:  status,
	}, nil
}

// Settle captures a previously authorized order: it records a settlement
// referencing the latest authorization (nullable when none exists) and moves
// the order to SETTLED.
func (s *paymentServiceImpl) Settle(ctx context.Context, req *models.SettleRequest) (*models.SettleResponse, *apierrors.Error) {
	if req.OrderID == "" || req.Amount == 0 {
		return nil, apierrors.Validation("order_id and amount are required")
	}

	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("order " + req.OrderID + " not found")
		}
		return nil, apierrors.Storage(err)
	}

	if order.Status != models.OrderStatusAuthorized {
		return nil, apierrors.InvalidState("order " + req.OrderID + " is " + order.Status + ", only AUTHORIZED orders can be settled")
	}

	var authID *uuid.UUID
	latestAuth, err := s.authRepo.FindLatestByOrderID(ctx, req.OrderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.Storage(err)
	}
	if latestAuth != nil {
		authID = &latestAuth.AuthID
	}

	settlement := &models.Settlement{
		SettlementID:     uuid.New(),
		OrderID:          req.OrderID,
		AuthID:           authID,
		SettledAmount:    req.Amount,
		SettlementStatus: models.SettlementStatusSettled,
		SettlementDate:   time.Now(),
	}
	if err := s.settlementRepo.Append(ctx, settlement); err != nil {
		s.logger.Error("Failed to append settlement", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, apierrors.Storage(err)
	}

	if err := s.orderRepo.UpdateStatus(ctx, req.OrderID, models.OrderStatusSettled); err != nil {
		s.logger.Error("Failed to transition order to SETTLED", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, apierrors.Storage(err)
	}

	s.logger.Info("Order settled",
		zap.String("order_id", req.OrderID),
		zap.Float64("settled_amount", req.Amount),
	)

	return &models.SettleResponse{
		OrderID:       req.OrderID,
		PaymentStatus: models.SettlementStatusSettled,
	}, nil
}

// GetOrderDetail returns the order with its latest authorization and latest
// settlement, either of which may be absent.
func (s *paymentServiceImpl) GetOrderDetail(ctx context.Context, orderID string) (*models.OrderDetail, *apierrors.Error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("order " + orderID + " not found")
		}
		return nil, apierrors.Storage(err)
	}

	detail := &models.OrderDetail{Order: *order}

	auth, err := s.authRepo.FindLatestByOrderID(ctx, orderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.Storage(err)
	}
	detail.LastAuthorization = auth

	settlement, err := s.settlementRepo.FindLatestByOrderID(ctx, orderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.Storage(err)
	}
	detail.LastSettlement = settlement

	return detail, nil
}

// ListOrders returns orders by order_date descending. The caller's min_amount
// and the deployment's policy floor are layered: the stricter one wins.
func (s *paymentServiceImpl) ListOrders(ctx context.Context, limit, offset int, minAmount float64) ([]models.Order, *apierrors.Error) {
	floor := minAmount
	if s.minOrderAmount > floor {
		floor = s.minOrderAmount
	}

	orders, err := s.orderRepo.FindAll(ctx, limit, offset, floor)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, apierrors.Storage(err)
	}
	return orders, nil
}
