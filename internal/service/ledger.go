package service

import (
	"context"

	"github.com/google/uuid"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"
)

type ledgerService struct {
	store repository.Store
}

func NewLedgerService(store repository.Store) LedgerService {
	return &ledgerService{store: store}
}

// LogBooking appends a BOOKING event carrying the estimated cost as both base
// revenue and total amount.
func (s *ledgerService) LogBooking(ctx context.Context, store repository.Store, b *domain.Booking) (*domain.LedgerEntry, error) {
	duration := b.EstDays
	entry := &domain.LedgerEntry{
		Type:           domain.TransactionTypeBooking,
		Reference:      uuid.NewString(),
		BookingID:      &b.ID,
		CustomerName:   b.CustomerName,
		VehicleID:      b.VehicleID,
		Date:           b.StartDate,
		RentalDuration: &duration,
		BaseRevenue:    b.EstCost,
		TotalAmount:    b.EstCost,
	}
	if err := store.Ledger().Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// LogReturn appends a RETURN event with the full fee breakdown. Base revenue
// is the booking's original estimate; the total is the settlement amount.
func (s *ledgerService) LogReturn(ctx context.Context, store repository.Store, b *domain.Booking, r *domain.Return) (*domain.LedgerEntry, error) {
	duration := b.EstDays
	cleaningFee := r.CleaningFee
	maintenanceCost := r.MaintenanceCost
	lateFee := r.LateFee
	entry := &domain.LedgerEntry{
		Type:            domain.TransactionTypeReturn,
		Reference:       uuid.NewString(),
		BookingID:       &b.ID,
		ReturnID:        &r.ID,
		CustomerName:    b.CustomerName,
		VehicleID:       b.VehicleID,
		Date:            r.ReturnDate,
		RentalDuration:  &duration,
		BaseRevenue:     b.EstCost,
		CleaningFee:     &cleaningFee,
		MaintenanceCost: &maintenanceCost,
		LateFee:         &lateFee,
		TotalAmount:     r.TotalCost,
	}
	if err := store.Ledger().Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) History(ctx context.Context, rng domain.DateRange) ([]domain.LedgerHistoryEntry, error) {
	return s.store.Ledger().History(ctx, rng)
}

func (s *ledgerService) Summary(ctx context.Context, rng domain.DateRange) (*domain.LedgerSummary, error) {
	return s.store.Ledger().Summary(ctx, rng)
}
