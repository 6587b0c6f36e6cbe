package service

import (
	"context"
	"errors"
	"fmt"

	"sharemycar/internal/domain"
	"sharemycar/internal/logger"
	"sharemycar/internal/repository"
	"sharemycar/internal/utils"
)

type returnService struct {
	store       repository.Store
	maintenance MaintenanceService
	ledger      LedgerService
	fees        utils.FeeSchedule
}

func NewReturnService(store repository.Store, maintenance MaintenanceService, ledger LedgerService, fees utils.FeeSchedule) ReturnService {
	return &returnService{
		store:       store,
		maintenance: maintenance,
		ledger:      ledger,
		fees:        fees,
	}
}

// Settle closes a booking: it fixes the actual distance, recomputes the final
// cost, advances the odometer, runs the maintenance threshold check and logs
// the financial event. All writes happen in one transaction.
func (s *returnService) Settle(ctx context.Context, req SettleReturnRequest) (*SettlementResult, error) {
	if req.ActualKm < 0 {
		return nil, fmt.Errorf("actual kilometers must not be negative: %w", domain.ErrInvalidInput)
	}

	booking, err := s.store.Bookings().GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	_, err = s.store.Returns().GetByBookingID(ctx, booking.ID)
	if err == nil {
		return nil, fmt.Errorf("booking %d already returned: %w", booking.ID, domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	vehicle, err := s.store.Vehicles().GetByID(ctx, booking.VehicleID)
	if err != nil {
		return nil, err
	}

	daysLate, err := utils.DaysLate(booking.DueDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}
	breakdown := utils.ComputeSettlement(
		booking.EstCost, booking.EstKm, req.ActualKm, daysLate, vehicle.MaintenanceCostPerKm, s.fees)
	newMileage := vehicle.Mileage + req.ActualKm

	ret := &domain.Return{
		BookingID:       booking.ID,
		ActualKm:        req.ActualKm,
		ReturnDate:      utils.FormatDate(req.ReturnDate),
		DaysLate:        breakdown.DaysLate,
		LateFee:         breakdown.LateFee,
		CleaningFee:     breakdown.CleaningFee,
		MaintenanceCost: breakdown.MaintenanceCost,
		TotalCost:       breakdown.TotalCost,
	}

	var maintenanceRecord *domain.Maintenance
	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Returns().Create(ctx, ret); err != nil {
			return fmt.Errorf("insert return: %w", err)
		}

		maintenanceRecord, err = s.maintenance.CheckAndRecord(ctx, tx, vehicle, newMileage, req.ReturnDate)
		if err != nil {
			return fmt.Errorf("maintenance check: %w", err)
		}

		if err := tx.Vehicles().SetMileage(ctx, vehicle.ID, newMileage); err != nil {
			return fmt.Errorf("update mileage: %w", err)
		}
		// Boundary maintenance auto-completes, so the vehicle goes back into
		// the available pool either way.
		if err := tx.Vehicles().SetAvailability(ctx, vehicle.ID, true); err != nil {
			return fmt.Errorf("restore availability: %w", err)
		}

		if _, err := s.ledger.LogReturn(ctx, tx, booking, ret); err != nil {
			return fmt.Errorf("log return transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("return settled",
		"booking_id", booking.ID, "return_id", ret.ID, "actual_km", req.ActualKm,
		"days_late", ret.DaysLate, "total_cost", ret.TotalCost,
		"maintenance_triggered", maintenanceRecord != nil)

	return &SettlementResult{
		Return:               ret,
		NewMileage:           newMileage,
		MaintenanceTriggered: maintenanceRecord != nil,
		MaintenanceRecord:    maintenanceRecord,
	}, nil
}

func (s *returnService) History(ctx context.Context) ([]domain.ReturnHistoryEntry, error) {
	return s.store.Returns().History(ctx)
}
