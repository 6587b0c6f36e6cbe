package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sharemycar/internal/domain"
	"sharemycar/internal/logger"
	"sharemycar/internal/repository"
	"sharemycar/internal/utils"
)

type maintenanceService struct {
	store repository.Store
	fees  utils.FeeSchedule
}

func NewMaintenanceService(store repository.Store, fees utils.FeeSchedule) MaintenanceService {
	return &maintenanceService{store: store, fees: fees}
}

// CheckAndRecord triggers when the mileage update crosses a multiple of the
// maintenance interval, measured from the boundary below the vehicle's prior
// mileage. Threshold maintenance is recorded as completed immediately.
func (s *maintenanceService) CheckAndRecord(ctx context.Context, store repository.Store, vehicle *domain.Vehicle, newMileage int64, date time.Time) (*domain.Maintenance, error) {
	check := utils.CheckMaintenanceDue(vehicle.Mileage, newMileage, s.fees.MaintenanceIntervalKm, vehicle.MaintenanceCostPerKm)
	if !check.Needed {
		return nil, nil
	}

	record := &domain.Maintenance{
		VehicleID:   vehicle.ID,
		Date:        utils.FormatDate(date),
		Mileage:     newMileage,
		Cost:        check.Cost,
		Description: fmt.Sprintf("Automatic maintenance at %d km", newMileage),
		IsCompleted: true,
	}
	if err := store.Maintenance().Create(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("automatic maintenance recorded",
		"vehicle_id", vehicle.ID, "mileage", newMileage, "cost", check.Cost)
	return record, nil
}

// Schedule creates a pending maintenance record and takes the vehicle out of
// the available pool until Complete is called.
func (s *maintenanceService) Schedule(ctx context.Context, vehicleID int64, description string, cost float64, date time.Time) (*domain.Maintenance, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required: %w", domain.ErrInvalidInput)
	}
	if cost < 0 {
		return nil, fmt.Errorf("cost must not be negative: %w", domain.ErrInvalidInput)
	}

	vehicle, err := s.store.Vehicles().GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsAvailable {
		return nil, fmt.Errorf("vehicle %d is booked or already in maintenance: %w", vehicleID, domain.ErrConflict)
	}

	record := &domain.Maintenance{
		VehicleID:   vehicle.ID,
		Date:        utils.FormatDate(date),
		Mileage:     vehicle.Mileage,
		Cost:        cost,
		Description: description,
		IsCompleted: false,
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Maintenance().Create(ctx, record); err != nil {
			return fmt.Errorf("insert maintenance: %w", err)
		}
		if err := tx.Vehicles().SetAvailability(ctx, vehicle.ID, false); err != nil {
			return fmt.Errorf("mark vehicle unavailable: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("maintenance scheduled", "maintenance_id", record.ID, "vehicle_id", vehicle.ID)
	return record, nil
}

// Complete closes a pending maintenance record and restores the vehicle's
// availability, unless another incomplete record still holds it.
func (s *maintenanceService) Complete(ctx context.Context, maintenanceID int64) error {
	record, err := s.store.Maintenance().GetByID(ctx, maintenanceID)
	if err != nil {
		return err
	}
	if record.IsCompleted {
		return fmt.Errorf("maintenance record %d already completed: %w", maintenanceID, domain.ErrConflict)
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Maintenance().MarkCompleted(ctx, record.ID); err != nil {
			return err
		}
		pending, err := tx.Maintenance().HasIncomplete(ctx, record.VehicleID)
		if err != nil {
			return err
		}
		if !pending {
			if err := tx.Vehicles().SetAvailability(ctx, record.VehicleID, true); err != nil {
				return fmt.Errorf("restore availability: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("maintenance completed", "maintenance_id", record.ID, "vehicle_id", record.VehicleID)
	return nil
}

func (s *maintenanceService) History(ctx context.Context) ([]domain.MaintenanceHistoryEntry, error) {
	return s.store.Maintenance().History(ctx)
}
