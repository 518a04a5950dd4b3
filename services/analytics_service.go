package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Sopejohn/freshmart/models"
	"github.com/Sopejohn/freshmart/repository"
)

const (
	topItemsLimit     = 8
	dailyWindowDays   = 7
	recentOrdersLimit = 8
)

type AnalyticsService struct {
	orderRepo repository.OrderRepository
	cache     *repository.AnalyticsCache
	logger    *zap.Logger
}

func NewAnalyticsService(orderRepo repository.OrderRepository, cache *repository.AnalyticsCache, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		orderRepo: orderRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Summary builds the dashboard payload, serving from the Redis cache when a
// fresh copy exists. Cache failures fall through to the database.
func (s *AnalyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, *ServiceError) {
	if cached, err := s.cache.GetSummary(ctx); err != nil {
		s.logger.Warn("Analytics cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	topItems, err := s.orderRepo.TopItems(ctx, topItemsLimit)
	if err != nil {
		s.logger.Error("Failed to load top items", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load analytics"}
	}

	daily, err := s.orderRepo.DailyCounts(ctx, dailyWindowDays)
	if err != nil {
		s.logger.Error("Failed to load daily order counts", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load analytics"}
	}

	recent, err := s.orderRepo.FindRecent(ctx, recentOrdersLimit)
	if err != nil {
		s.logger.Error("Failed to load recent orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load analytics"}
	}

	summary := &models.AnalyticsSummary{
		TopItems:     topItems,
		DailyOrders:  daily,
		RecentOrders: recent,
	}

	if err := s.cache.SetSummary(ctx, summary); err != nil {
		s.logger.Warn("Analytics cache write failed", zap.Error(err))
	}

	return summary, nil
}

// MonthlyFinancials returns per-month revenue totals for the financials view.
func (s *AnalyticsService) MonthlyFinancials(ctx context.Context, months int) ([]models.MonthlyRevenue, *ServiceError) {
	if months <= 0 || months > 36 {
		months = 12
	}

	rows, err := s.orderRepo.MonthlyRevenue(ctx, months)
	if err != nil {
		s.logger.Error("Failed to load monthly revenue", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load financials"}
	}
	return rows, nil
}
