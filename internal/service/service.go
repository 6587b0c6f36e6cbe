package service

import (
	"context"
	"time"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"
)

// AddVehicleRequest carries validated-at-the-boundary vehicle input.
type AddVehicleRequest struct {
	Brand                string
	Model                string
	Mileage              int64
	DailyRentalPrice     int64
	MaintenanceCostPerKm float64
	IsAvailable          bool
}

type CreateBookingRequest struct {
	CustomerName string
	VehicleID    int64
	StartDate    time.Time
	DurationDays int64
	EstimatedKm  int64
}

type SettleReturnRequest struct {
	BookingID  int64
	ActualKm   int64
	ReturnDate time.Time
}

// BookingConfirmation reports the cost split of a freshly created booking.
type BookingConfirmation struct {
	Booking         *domain.Booking
	RentalCost      float64
	MaintenanceCost float64
	TotalCost       float64
}

// SettlementResult reports the outcome of a return settlement.
type SettlementResult struct {
	Return               *domain.Return
	NewMileage           int64
	MaintenanceTriggered bool
	MaintenanceRecord    *domain.Maintenance
}

type VehicleService interface {
	Add(ctx context.Context, req AddVehicleRequest) (*domain.Vehicle, error)
	Get(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
}

type BookingService interface {
	Create(ctx context.Context, req CreateBookingRequest) (*BookingConfirmation, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListActive(ctx context.Context) ([]domain.Booking, error)
}

type ReturnService interface {
	Settle(ctx context.Context, req SettleReturnRequest) (*SettlementResult, error)
	History(ctx context.Context) ([]domain.ReturnHistoryEntry, error)
}

type MaintenanceService interface {
	// CheckAndRecord evaluates the distance threshold for a mileage update and,
	// when crossed, inserts an auto-completed maintenance record through the
	// given (typically transaction-bound) store. It returns the record, or nil
	// when no maintenance is due.
	CheckAndRecord(ctx context.Context, store repository.Store, vehicle *domain.Vehicle, newMileage int64, date time.Time) (*domain.Maintenance, error)
	Schedule(ctx context.Context, vehicleID int64, description string, cost float64, date time.Time) (*domain.Maintenance, error)
	Complete(ctx context.Context, maintenanceID int64) error
	History(ctx context.Context) ([]domain.MaintenanceHistoryEntry, error)
}

type LedgerService interface {
	// LogBooking and LogReturn append financial events through the given
	// (typically transaction-bound) store; they are invoked from inside the
	// owning operation's transaction.
	LogBooking(ctx context.Context, store repository.Store, b *domain.Booking) (*domain.LedgerEntry, error)
	LogReturn(ctx context.Context, store repository.Store, b *domain.Booking, r *domain.Return) (*domain.LedgerEntry, error)
	History(ctx context.Context, rng domain.DateRange) ([]domain.LedgerHistoryEntry, error)
	Summary(ctx context.Context, rng domain.DateRange) (*domain.LedgerSummary, error)
}

type MetricsService interface {
	Revenue(ctx context.Context, rng domain.DateRange) (*domain.RevenueMetrics, error)
	OperationalCosts(ctx context.Context, rng domain.DateRange) (*domain.OperationalCosts, error)
	Profit(ctx context.Context, rng domain.DateRange) (*domain.ProfitMetrics, error)
	VehicleMileage(ctx context.Context) (*domain.MileageMetrics, error)
	VehicleReport(ctx context.Context, vehicleID int64, rng domain.DateRange) (*domain.VehicleReport, error)
	DetailedReport(ctx context.Context, rng domain.DateRange) (*domain.FinancialReport, error)
}
