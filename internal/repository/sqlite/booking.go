package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"
)

type bookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO booking (customer_name, vehicle_id, start_date, due_date, est_days, est_km, est_cost)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, b.CustomerName, b.VehicleID, b.StartDate, b.DueDate, b.EstDays, b.EstKm, b.EstCost)
	if err != nil {
		return err
	}
	b.ID, err = res.LastInsertId()
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT booking_id, customer_name, vehicle_id, start_date, due_date, est_days, est_km, est_cost
	          FROM booking WHERE booking_id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.CustomerName, &b.VehicleID, &b.StartDate, &b.DueDate, &b.EstDays, &b.EstKm, &b.EstCost)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListActive(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT booking_id, customer_name, vehicle_id, start_date, due_date, est_days, est_km, est_cost
	          FROM booking
	          WHERE NOT EXISTS (SELECT 1 FROM returns WHERE returns.booking_id = booking.booking_id)
	          ORDER BY booking_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.CustomerName, &b.VehicleID, &b.StartDate, &b.DueDate, &b.EstDays, &b.EstKm, &b.EstCost); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
