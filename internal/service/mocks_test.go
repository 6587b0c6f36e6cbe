package service

import (
	"context"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockVehicleRepo) SetMileage(ctx context.Context, id int64, mileage int64) error {
	args := m.Called(ctx, id, mileage)
	return args.Error(0)
}
func (m *MockVehicleRepo) MileageStats(ctx context.Context) (*domain.MileageMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MileageMetrics), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListActive(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockReturnRepo
type MockReturnRepo struct {
	mock.Mock
}

func (m *MockReturnRepo) Create(ctx context.Context, r *domain.Return) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReturnRepo) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Return, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Return), args.Error(1)
}
func (m *MockReturnRepo) History(ctx context.Context) ([]domain.ReturnHistoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnHistoryEntry), args.Error(1)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, rec *domain.Maintenance) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int64) (*domain.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) MarkCompleted(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) History(ctx context.Context) ([]domain.MaintenanceHistoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceHistoryEntry), args.Error(1)
}
func (m *MockMaintenanceRepo) HasIncomplete(ctx context.Context, vehicleID int64) (bool, error) {
	args := m.Called(ctx, vehicleID)
	return args.Bool(0), args.Error(1)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) Create(ctx context.Context, e *domain.LedgerEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockLedgerRepo) History(ctx context.Context, rng domain.DateRange) ([]domain.LedgerHistoryEntry, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerHistoryEntry), args.Error(1)
}
func (m *MockLedgerRepo) Summary(ctx context.Context, rng domain.DateRange) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}
func (m *MockLedgerRepo) Revenue(ctx context.Context, rng domain.DateRange) (*domain.RevenueMetrics, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueMetrics), args.Error(1)
}
func (m *MockLedgerRepo) OperationalCosts(ctx context.Context, rng domain.DateRange) (*domain.OperationalCosts, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationalCosts), args.Error(1)
}
func (m *MockLedgerRepo) Profit(ctx context.Context, rng domain.DateRange) (*domain.ProfitMetrics, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitMetrics), args.Error(1)
}
func (m *MockLedgerRepo) VehicleReport(ctx context.Context, vehicleID int64, rng domain.DateRange) (*domain.VehicleReport, error) {
	args := m.Called(ctx, vehicleID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleReport), args.Error(1)
}

// MockStore bundles the repository mocks behind the Store interface. ExecTx
// hands the same store back to the callback, so transactional code paths run
// against the mocks directly.
type MockStore struct {
	VehicleRepo     MockVehicleRepo
	BookingRepo     MockBookingRepo
	ReturnRepo      MockReturnRepo
	MaintenanceRepo MockMaintenanceRepo
	LedgerRepo      MockLedgerRepo
	ExecTxErr       error
}

func (s *MockStore) Vehicles() repository.VehicleRepository        { return &s.VehicleRepo }
func (s *MockStore) Bookings() repository.BookingRepository        { return &s.BookingRepo }
func (s *MockStore) Returns() repository.ReturnRepository          { return &s.ReturnRepo }
func (s *MockStore) Maintenance() repository.MaintenanceRepository { return &s.MaintenanceRepo }
func (s *MockStore) Ledger() repository.LedgerRepository           { return &s.LedgerRepo }

func (s *MockStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	if s.ExecTxErr != nil {
		return s.ExecTxErr
	}
	return fn(s)
}

func (s *MockStore) AssertExpectations(t mock.TestingT) {
	s.VehicleRepo.AssertExpectations(t)
	s.BookingRepo.AssertExpectations(t)
	s.ReturnRepo.AssertExpectations(t)
	s.MaintenanceRepo.AssertExpectations(t)
	s.LedgerRepo.AssertExpectations(t)
}
