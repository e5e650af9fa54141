package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"rental-system/internal/repositories"
	"rental-system/pkg/types"
)

const dashboardCacheKey = "dashboard:stats"

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*types.DashboardStats, error)
}

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	cache               repositories.CacheRepositoryInterface
	cacheTTL            time.Duration
	logger              *zap.Logger
}

func NewDashboardService(
	dashboardRepository repositories.DashboardRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepository: dashboardRepository,
		cache:               cache,
		cacheTTL:            cacheTTL,
		logger:              logger,
	}
}

// GetStats serves the dashboard snapshot, from Redis when a fresh copy is
// there. Cache failures only cost the shortcut, never the request.
func (s *DashboardService) GetStats(ctx context.Context) (*types.DashboardStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey); err == nil && cached != "" {
			var stats types.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
			s.logger.Warn("discarding unreadable dashboard cache entry")
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, raw, s.cacheTTL); err != nil {
				s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *DashboardService) computeStats(ctx context.Context) (*types.DashboardStats, error) {
	var stats types.DashboardStats

	if err := s.dashboardRepository.GetEmployeeCounts(ctx, &stats); err != nil {
		return nil, err
	}
	if err := s.dashboardRepository.GetEquipmentTotals(ctx, &stats); err != nil {
		return nil, err
	}
	if err := s.dashboardRepository.GetEventCounts(ctx, &stats); err != nil {
		return nil, err
	}

	revenue, err := s.dashboardRepository.GetMonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	costs, err := s.dashboardRepository.GetMonthlyCosts(ctx)
	if err != nil {
		return nil, err
	}

	stats.MonthlyRevenue = revenue
	stats.MonthlyCosts = costs
	stats.Profit = revenue.Sub(costs)
	return &stats, nil
}
