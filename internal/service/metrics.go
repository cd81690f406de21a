package service

import (
	"context"
	"fmt"
	"time"

	"sea-catering-backend/internal/dto"
	"sea-catering-backend/internal/model"
	"sea-catering-backend/internal/repository"
)

// MetricsService derives dashboard numbers from the subscription table on
// every call; nothing is cached or persisted.
type MetricsService interface {
	Range(ctx context.Context, from, to time.Time) (*dto.AdminMetrics, error)
}

type metricsServiceImpl struct {
	subscriptionRepo repository.SubscriptionRepository
}

func NewMetricsService(subscriptionRepo repository.SubscriptionRepository) MetricsService {
	return &metricsServiceImpl{
		subscriptionRepo: subscriptionRepo,
	}
}

// Range computes metrics for [from, to]. New subscriptions and reactivations
// are filtered by the range; active count and monthly revenue are a snapshot
// of the current state.
func (s *metricsServiceImpl) Range(ctx context.Context, from, to time.Time) (*dto.AdminMetrics, error) {
	newSubs, err := s.subscriptionRepo.CountCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("count new subscriptions: %w", err)
	}

	active, err := s.subscriptionRepo.CountByStatus(ctx, model.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("count active subscriptions: %w", err)
	}

	revenue, err := s.subscriptionRepo.SumTotalPriceByStatus(ctx, model.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("sum monthly revenue: %w", err)
	}

	reactivations, err := s.subscriptionRepo.CountReactivatedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("count reactivations: %w", err)
	}

	return &dto.AdminMetrics{
		NewSubscriptions:    newSubs,
		ActiveSubscriptions: active,
		MonthlyRevenue:      revenue,
		Reactivations:       reactivations,
	}, nil
}
