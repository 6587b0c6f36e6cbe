package repository

import (
	"context"

	"sharemycar/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
	// SetMileage overwrites the odometer value. The settlement engine
	// guarantees monotonic increase; the repository does not enforce it.
	SetMileage(ctx context.Context, id int64, mileage int64) error
	MileageStats(ctx context.Context) (*domain.MileageMetrics, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// ListActive returns bookings with no referencing return row.
	ListActive(ctx context.Context) ([]domain.Booking, error)
}

type ReturnRepository interface {
	Create(ctx context.Context, r *domain.Return) error
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Return, error)
	History(ctx context.Context) ([]domain.ReturnHistoryEntry, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id int64) (*domain.Maintenance, error)
	MarkCompleted(ctx context.Context, id int64) error
	History(ctx context.Context) ([]domain.MaintenanceHistoryEntry, error)
	HasIncomplete(ctx context.Context, vehicleID int64) (bool, error)
}

// LedgerRepository is append-only: entries can be created and read, never
// updated or deleted.
type LedgerRepository interface {
	Create(ctx context.Context, e *domain.LedgerEntry) error
	History(ctx context.Context, rng domain.DateRange) ([]domain.LedgerHistoryEntry, error)
	Summary(ctx context.Context, rng domain.DateRange) (*domain.LedgerSummary, error)
	Revenue(ctx context.Context, rng domain.DateRange) (*domain.RevenueMetrics, error)
	OperationalCosts(ctx context.Context, rng domain.DateRange) (*domain.OperationalCosts, error)
	Profit(ctx context.Context, rng domain.DateRange) (*domain.ProfitMetrics, error)
	VehicleReport(ctx context.Context, vehicleID int64, rng domain.DateRange) (*domain.VehicleReport, error)
}

// Store aggregates the repositories behind one transactional boundary.
// ExecTx runs fn against a store bound to a single database transaction:
// every write inside fn commits together or not at all.
type Store interface {
	Vehicles() VehicleRepository
	Bookings() BookingRepository
	Returns() ReturnRepository
	Maintenance() MaintenanceRepository
	Ledger() LedgerRepository
	ExecTx(ctx context.Context, fn func(Store) error) error
}
