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

func TestMaintenanceService_CheckAndRecord(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	t.Run("BelowThreshold", func(t *testing.T) {
		store := &MockStore{}
		svc := NewMaintenanceService(store, utils.DefaultFeeSchedule())

		vehicle := &domain.Vehicle{ID: 2, Mileage: 10200, MaintenanceCostPerKm: 0.1}
		record, err := svc.CheckAndRecord(ctx, store, vehicle, 10900, date)
		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("ThresholdCrossed", func(t *testing.T) {
		store := &MockStore{}
		svc := NewMaintenanceService(store, utils.DefaultFeeSchedule())

		store.MaintenanceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Maintenance")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Maintenance).ID = 9
			}).Return(nil)

		vehicle := &domain.Vehicle{ID: 2, Mileage: 9500, MaintenanceCostPerKm: 0.1}
		record, err := svc.CheckAndRecord(ctx, store, vehicle, 10300, date)
		assert.NoError(t, err)
		assert.Equal(t, int64(9), record.ID)
		assert.Equal(t, "2026-09-05", record.Date)
		assert.Equal(t, int64(10300), record.Mileage)
		assert.InDelta(t, 1030.0, record.Cost, 1e-9)
		assert.Equal(t, "Automatic maintenance at 10300 km", record.Description)
		assert.True(t, record.IsCompleted)
	})
}

func TestMaintenanceService_Schedule(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		store := &MockStore{}
		svc := NewMaintenanceService(store, utils.DefaultFeeSchedule())

		vehicle := &domain.Vehicle{ID: 2, Mileage: 50000, IsAvailable: true}
		store.VehicleRepo.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.MaintenanceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Maintenance")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Maintenance).ID = 7
			}).Return(nil)
		store.VehicleRepo.On("SetAvailability", ctx, int64(2), false).Return(nil)

		record, err := svc.Schedule(ctx, 2, "Brake pad replacement", 350, date)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), record.ID)
		assert.Equal(t, int64(50000), record.Mileage)
		assert.False(t, record.IsCompleted)
		store.AssertExpectations(t)
	})

	t.Run("VehicleNotAvailable", func(t *testing.T) {
		store := &MockStore{}
		svc := NewMaintenanceService(store, utils.DefaultFeeSchedule())

		vehicle := &domain.Vehicle{ID: 2, IsAvailable: false}
		store.VehicleRepo.On("GetByID", ctx, int64(2)).Return(vehicle, nil)

		record, err := svc.Schedule(ctx, 2, "Brake pad replacement", 350, date)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		store := &MockStore{}
		svc := NewMaintenanceService(store, utils.DefaultFeeSchedule())

		_, err := svc.Schedule(ctx, 2, "  ", 350, date)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.Schedule(ctx, 2, "Brake pad replacement", -1, date)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestMaintenanceService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("RestoresAvailability", func(t *testing.T) {
		store := &MockStore{}
		svc := NewMaintenanceService(store, utils.DefaultFeeSchedule())

		record := &domain.Maintenance{ID: 7, VehicleID: 2, IsCompleted: false}
		store.MaintenanceRepo.On("GetByID", ctx, int64(7)).Return(record, nil)
		store.MaintenanceRepo.On("MarkCompleted", ctx, int64(7)).Return(nil)
		store.MaintenanceRepo.On("HasIncomplete", ctx, int64(2)).Return(false, nil)
		store.VehicleRepo.On("SetAvailability", ctx, int64(2), true).Return(nil)

		assert.NoError(t, svc.Complete(ctx, 7))
		store.AssertExpectations(t)
	})

	t.Run("KeepsVehicleHeldWhileWorkRemains", func(t *testing.T) {
		store := &MockStore{}
		svc := NewMaintenanceService(store, utils.DefaultFeeSchedule())

		record := &domain.Maintenance{ID: 7, VehicleID: 2, IsCompleted: false}
		store.MaintenanceRepo.On("GetByID", ctx, int64(7)).Return(record, nil)
		store.MaintenanceRepo.On("MarkCompleted", ctx, int64(7)).Return(nil)
		store.MaintenanceRepo.On("HasIncomplete", ctx, int64(2)).Return(true, nil)

		assert.NoError(t, svc.Complete(ctx, 7))
		store.VehicleRepo.AssertNotCalled(t, "SetAvailability", ctx, int64(2), true)
	})

	t.Run("AlreadyCompleted", func(t *testing.T) {
		store := &MockStore{}
		svc := NewMaintenanceService(store, utils.DefaultFeeSchedule())

		record := &domain.Maintenance{ID: 7, VehicleID: 2, IsCompleted: true}
		store.MaintenanceRepo.On("GetByID", ctx, int64(7)).Return(record, nil)

		assert.ErrorIs(t, svc.Complete(ctx, 7), domain.ErrConflict)
	})
}
