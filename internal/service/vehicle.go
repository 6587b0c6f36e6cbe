package service

import (
	"context"

	"sharemycar/internal/domain"
	"sharemycar/internal/logger"
	"sharemycar/internal/repository"
)

type vehicleService struct {
	store repository.Store
}

func NewVehicleService(store repository.Store) VehicleService {
	return &vehicleService{store: store}
}

func (s *vehicleService) Add(ctx context.Context, req AddVehicleRequest) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{
		Brand:                req.Brand,
		Model:                req.Model,
		Mileage:              req.Mileage,
		DailyRentalPrice:     req.DailyRentalPrice,
		MaintenanceCostPerKm: req.MaintenanceCostPerKm,
		IsAvailable:          req.IsAvailable,
	}
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Vehicles().Create(ctx, vehicle); err != nil {
		return nil, err
	}
	logger.Info("vehicle added", "vehicle_id", vehicle.ID, "brand", vehicle.Brand, "model", vehicle.Model)
	return vehicle, nil
}

func (s *vehicleService) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.store.Vehicles().GetByID(ctx, id)
}

func (s *vehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.store.Vehicles().List(ctx)
}

func (s *vehicleService) SetAvailability(ctx context.Context, id int64, available bool) error {
	if err := s.store.Vehicles().SetAvailability(ctx, id, available); err != nil {
		return err
	}
	logger.Info("vehicle availability updated", "vehicle_id", id, "available", available)
	return nil
}
