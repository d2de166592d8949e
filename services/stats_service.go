package services

import (
	"context"

	"payment-api/apierrors"
	"payment-api/models"
	"payment-api/repository"

	"go.uber.org/zap"
)

// recentOrderCount is how many of the newest orders the rollup includes.
const recentOrderCount = 5

// StatsService computes the read-only rollup across the order and settlement
// stores. Nothing is cached; every call recomputes from scratch.
type StatsService interface {
	Collect(ctx context.Context) (*models.Stats, *apierrors.Error)
}

type statsServiceImpl struct {
	orderRepo      repository.OrderRepository
	settlementRepo repository.SettlementRepository
	logger         *zap.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(orderRepo repository.OrderRepository, settlementRepo repository.SettlementRepository, logger *zap.Logger) StatsService {
	return &statsServiceImpl{
		orderRepo:      orderRepo,
		settlementRepo: settlementRepo,
		logger:         logger,
	}
}

func (s *statsServiceImpl) Collect(ctx context.Context) (*models.Stats, *apierrors.Error) {
	counts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Failed to count orders by status", zap.Error(err))
		return nil, apierrors.Storage(err)
	}

	totals := make(map[string]int64, len(counts)+1)
	var all int64
	for status, n := range counts {
		totals[status] = n
		all += n
	}
	totals["ALL"] = all

	settledTotal, err := s.settlementRepo.SumSettled(ctx)
	if err != nil {
		s.logger.Error("Failed to sum settlements", zap.Error(err))
		return nil, apierrors.Storage(err)
	}

	recent, err := s.orderRepo.FindRecent(ctx, recentOrderCount)
	if err != nil {
		s.logger.Error("Failed to fetch recent orders", zap.Error(err))
		return nil, apierrors.Storage(err)
	}
	if recent == nil {
		recent = []models.Order{}
	}

	return &models.Stats{
		Totals:       totals,
		SettledTotal: settledTotal,
		RecentOrders: recent,
	}, nil
}
