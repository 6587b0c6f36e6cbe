package service

import (
	"context"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"
)

type metricsService struct {
	store repository.Store
}

func NewMetricsService(store repository.Store) MetricsService {
	return &metricsService{store: store}
}

func (s *metricsService) Revenue(ctx context.Context, rng domain.DateRange) (*domain.RevenueMetrics, error) {
	return s.store.Ledger().Revenue(ctx, rng)
}

func (s *metricsService) OperationalCosts(ctx context.Context, rng domain.DateRange) (*domain.OperationalCosts, error) {
	return s.store.Ledger().OperationalCosts(ctx, rng)
}

func (s *metricsService) Profit(ctx context.Context, rng domain.DateRange) (*domain.ProfitMetrics, error) {
	return s.store.Ledger().Profit(ctx, rng)
}

func (s *metricsService) VehicleMileage(ctx context.Context) (*domain.MileageMetrics, error) {
	return s.store.Vehicles().MileageStats(ctx)
}

func (s *metricsService) VehicleReport(ctx context.Context, vehicleID int64, rng domain.DateRange) (*domain.VehicleReport, error) {
	return s.store.Ledger().VehicleReport(ctx, vehicleID, rng)
}

// DetailedReport composes every metric group into one report.
func (s *metricsService) DetailedReport(ctx context.Context, rng domain.DateRange) (*domain.FinancialReport, error) {
	revenue, err := s.Revenue(ctx, rng)
	if err != nil {
		return nil, err
	}
	costs, err := s.OperationalCosts(ctx, rng)
	if err != nil {
		return nil, err
	}
	profit, err := s.Profit(ctx, rng)
	if err != nil {
		return nil, err
	}
	mileage, err := s.VehicleMileage(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.FinancialReport{
		Revenue:          *revenue,
		OperationalCosts: *costs,
		Profit:           *profit,
		Mileage:          *mileage,
	}, nil
}
