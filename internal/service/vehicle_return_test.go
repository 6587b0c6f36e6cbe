package service

import (
	"context"
	"testing"
	"time"

	"sharemycar/internal/domain"
	"sharemycar/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReturnFixture(store *MockStore) ReturnService {
	fees := utils.DefaultFeeSchedule()
	return NewReturnService(store, NewMaintenanceService(store, fees), NewLedgerService(store), fees)
}

func TestReturnService_Settle(t *testing.T) {
	ctx := context.Background()

	booking := &domain.Booking{
		ID: 5, CustomerName: "Alice", VehicleID: 2,
		StartDate: "2026-09-01", DueDate: "2026-09-04",
		EstDays: 3, EstKm: 300, EstCost: 180,
	}

	t.Run("OnTimeNoMaintenance", func(t *testing.T) {
		store := &MockStore{}
		svc := newReturnFixture(store)

		vehicle := &domain.Vehicle{ID: 2, Mileage: 50000, MaintenanceCostPerKm: 0.1}
		store.BookingRepo.On("GetByID", ctx, int64(5)).Return(booking, nil)
		store.ReturnRepo.On("GetByBookingID", ctx, int64(5)).Return(nil, domain.ErrNotFound)
		store.VehicleRepo.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.ReturnRepo.On("Create", ctx, mock.AnythingOfType("*domain.Return")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Return).ID = 3
			}).Return(nil)
		store.VehicleRepo.On("SetMileage", ctx, int64(2), int64(50300)).Return(nil)
		store.VehicleRepo.On("SetAvailability", ctx, int64(2), true).Return(nil)
		store.LedgerRepo.On("Create", ctx, mock.AnythingOfType("*domain.LedgerEntry")).Return(nil)

		result, err := svc.Settle(ctx, SettleReturnRequest{
			BookingID:  5,
			ActualKm:   300,
			ReturnDate: time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), result.Return.ID)
		assert.Equal(t, int64(0), result.Return.DaysLate)
		assert.Equal(t, 0.0, result.Return.LateFee)
		assert.Equal(t, 20.0, result.Return.CleaningFee)
		assert.InDelta(t, 30.0, result.Return.MaintenanceCost, 1e-9)
		assert.InDelta(t, 200.0, result.Return.TotalCost, 1e-9)
		assert.Equal(t, int64(50300), result.NewMileage)
		assert.False(t, result.MaintenanceTriggered)
		store.AssertExpectations(t)
	})

	t.Run("LateWithMaintenanceBoundary", func(t *testing.T) {
		store := &MockStore{}
		svc := newReturnFixture(store)

		// 9500 + 800 crosses the 10000 km boundary.
		vehicle := &domain.Vehicle{ID: 2, Mileage: 9500, MaintenanceCostPerKm: 0.1}
		store.BookingRepo.On("GetByID", ctx, int64(5)).Return(booking, nil)
		store.ReturnRepo.On("GetByBookingID", ctx, int64(5)).Return(nil, domain.ErrNotFound)
		store.VehicleRepo.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.ReturnRepo.On("Create", ctx, mock.AnythingOfType("*domain.Return")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Return).ID = 4
			}).Return(nil)

		var recorded *domain.Maintenance
		store.MaintenanceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Maintenance")).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(*domain.Maintenance)
			}).Return(nil)
		store.VehicleRepo.On("SetMileage", ctx, int64(2), int64(10300)).Return(nil)
		store.VehicleRepo.On("SetAvailability", ctx, int64(2), true).Return(nil)
		store.LedgerRepo.On("Create", ctx, mock.AnythingOfType("*domain.LedgerEntry")).Return(nil)

		result, err := svc.Settle(ctx, SettleReturnRequest{
			BookingID:  5,
			ActualKm:   800,
			ReturnDate: time.Date(2026, 9, 6, 9, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), result.Return.DaysLate)
		assert.Equal(t, 20.0, result.Return.LateFee)
		assert.InDelta(t, 80.0, result.Return.MaintenanceCost, 1e-9)
		assert.InDelta(t, 270.0, result.Return.TotalCost, 1e-9)
		assert.True(t, result.MaintenanceTriggered)
		assert.Equal(t, recorded, result.MaintenanceRecord)
		assert.Equal(t, int64(10300), recorded.Mileage)
		assert.InDelta(t, 1030.0, recorded.Cost, 1e-9)
		assert.True(t, recorded.IsCompleted)
		store.AssertExpectations(t)
	})

	t.Run("AlreadyReturned", func(t *testing.T) {
		store := &MockStore{}
		svc := newReturnFixture(store)

		store.BookingRepo.On("GetByID", ctx, int64(5)).Return(booking, nil)
		store.ReturnRepo.On("GetByBookingID", ctx, int64(5)).Return(&domain.Return{ID: 3, BookingID: 5}, nil)

		result, err := svc.Settle(ctx, SettleReturnRequest{
			BookingID: 5, ActualKm: 300, ReturnDate: time.Now(),
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("UnknownBooking", func(t *testing.T) {
		store := &MockStore{}
		svc := newReturnFixture(store)

		store.BookingRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := svc.Settle(ctx, SettleReturnRequest{BookingID: 404, ActualKm: 300, ReturnDate: time.Now()})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("NegativeDistance", func(t *testing.T) {
		store := &MockStore{}
		svc := newReturnFixture(store)

		_, err := svc.Settle(ctx, SettleReturnRequest{BookingID: 5, ActualKm: -1, ReturnDate: time.Now()})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("ReturnLedgerEntryCarriesFees", func(t *testing.T) {
		store := &MockStore{}
		svc := newReturnFixture(store)

		vehicle := &domain.Vehicle{ID: 2, Mileage: 50000, MaintenanceCostPerKm: 0.1}
		store.BookingRepo.On("GetByID", ctx, int64(5)).Return(booking, nil)
		store.ReturnRepo.On("GetByBookingID", ctx, int64(5)).Return(nil, domain.ErrNotFound)
		store.VehicleRepo.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.ReturnRepo.On("Create", ctx, mock.AnythingOfType("*domain.Return")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Return).ID = 3
			}).Return(nil)
		store.VehicleRepo.On("SetMileage", ctx, int64(2), int64(50300)).Return(nil)
		store.VehicleRepo.On("SetAvailability", ctx, int64(2), true).Return(nil)

		var logged *domain.LedgerEntry
		store.LedgerRepo.On("Create", ctx, mock.AnythingOfType("*domain.LedgerEntry")).
			Run(func(args mock.Arguments) {
				logged = args.Get(1).(*domain.LedgerEntry)
			}).Return(nil)

		result, err := svc.Settle(ctx, SettleReturnRequest{
			BookingID:  5,
			ActualKm:   300,
			ReturnDate: time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionTypeReturn, logged.Type)
		assert.Equal(t, int64(3), *logged.ReturnID)
		assert.Equal(t, "2026-09-05", logged.Date)
		assert.Equal(t, 10.0, *logged.LateFee)
		assert.Equal(t, 20.0, *logged.CleaningFee)
		assert.InDelta(t, result.Return.TotalCost, logged.TotalAmount, 1e-9)
	})
}

func TestReturnService_History(t *testing.T) {
	ctx := context.Background()
	store := &MockStore{}
	svc := newReturnFixture(store)

	entries := []domain.ReturnHistoryEntry{{CustomerName: "Alice", Brand: "Toyota"}}
	store.ReturnRepo.On("History", ctx).Return(entries, nil)

	history, err := svc.History(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entries, history)
}
