package service

import (
	"context"
	"fmt"
	"strings"

	"sharemycar/internal/domain"
	"sharemycar/internal/logger"
	"sharemycar/internal/repository"
	"sharemycar/internal/utils"
)

type bookingService struct {
	store  repository.Store
	ledger LedgerService
}

func NewBookingService(store repository.Store, ledger LedgerService) BookingService {
	return &bookingService{store: store, ledger: ledger}
}

// Create reserves a vehicle. The booking insert, the availability flip and
// the ledger entry commit in one transaction; a failure anywhere rolls back
// all three.
func (s *bookingService) Create(ctx context.Context, req CreateBookingRequest) (*BookingConfirmation, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("customer name is required: %w", domain.ErrInvalidInput)
	}
	if req.DurationDays <= 0 {
		return nil, fmt.Errorf("rental duration must be positive: %w", domain.ErrInvalidInput)
	}
	if req.EstimatedKm < 0 {
		return nil, fmt.Errorf("estimated kilometers must not be negative: %w", domain.ErrInvalidInput)
	}

	vehicle, err := s.store.Vehicles().GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsAvailable {
		return nil, fmt.Errorf("vehicle %d is not available for booking: %w", vehicle.ID, domain.ErrConflict)
	}

	start := utils.Truncate(req.StartDate)
	due := start.AddDate(0, 0, int(req.DurationDays))
	rentalCost, maintenanceCost, totalCost := utils.EstimateCost(
		req.DurationDays, req.EstimatedKm, vehicle.DailyRentalPrice, vehicle.MaintenanceCostPerKm)

	booking := &domain.Booking{
		CustomerName: req.CustomerName,
		VehicleID:    vehicle.ID,
		StartDate:    utils.FormatDate(start),
		DueDate:      utils.FormatDate(due),
		EstDays:      req.DurationDays,
		EstKm:        req.EstimatedKm,
		EstCost:      totalCost,
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Bookings().Create(ctx, booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}
		if err := tx.Vehicles().SetAvailability(ctx, vehicle.ID, false); err != nil {
			return fmt.Errorf("mark vehicle unavailable: %w", err)
		}
		if _, err := s.ledger.LogBooking(ctx, tx, booking); err != nil {
			return fmt.Errorf("log booking transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("booking created",
		"booking_id", booking.ID, "vehicle_id", vehicle.ID, "customer", booking.CustomerName,
		"due_date", booking.DueDate, "est_cost", totalCost)

	return &BookingConfirmation{
		Booking:         booking,
		RentalCost:      rentalCost,
		MaintenanceCost: maintenanceCost,
		TotalCost:       totalCost,
	}, nil
}

func (s *bookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.store.Bookings().GetByID(ctx, id)
}

func (s *bookingService) ListActive(ctx context.Context) ([]domain.Booking, error) {
	return s.store.Bookings().ListActive(ctx)
}
