package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"
)

type returnRepository struct {
	db DBTX
}

func NewReturnRepository(db DBTX) repository.ReturnRepository {
	return &returnRepository{db: db}
}

func (r *returnRepository) Create(ctx context.Context, ret *domain.Return) error {
	query := `INSERT INTO returns (booking_id, actual_km, return_date, days_late, late_fee, cleaning_fee, maintenance_cost, total_cost)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		ret.BookingID, ret.ActualKm, ret.ReturnDate, ret.DaysLate, ret.LateFee, ret.CleaningFee, ret.MaintenanceCost, ret.TotalCost)
	if err != nil {
		return err
	}
	ret.ID, err = res.LastInsertId()
	return err
}

func (r *returnRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Return, error) {
	ret := &domain.Return{}
	query := `SELECT return_id, booking_id, actual_km, return_date, days_late, late_fee, cleaning_fee, maintenance_cost, total_cost
	          FROM returns WHERE booking_id = ?`
	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(
		&ret.ID, &ret.BookingID, &ret.ActualKm, &ret.ReturnDate, &ret.DaysLate, &ret.LateFee, &ret.CleaningFee, &ret.MaintenanceCost, &ret.TotalCost)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("return for booking %d: %w", bookingID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (r *returnRepository) History(ctx context.Context) ([]domain.ReturnHistoryEntry, error) {
	query := `SELECT r.return_id, r.booking_id, r.actual_km, r.return_date, r.days_late, r.late_fee, r.cleaning_fee, r.maintenance_cost, r.total_cost,
	                 b.customer_name, v.brand, v.model
	          FROM returns r
	          JOIN booking b ON r.booking_id = b.booking_id
	          JOIN vehicles v ON b.vehicle_id = v.id
	          ORDER BY r.return_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.ReturnHistoryEntry
	for rows.Next() {
		var e domain.ReturnHistoryEntry
		if err := rows.Scan(&e.ID, &e.BookingID, &e.ActualKm, &e.ReturnDate, &e.DaysLate, &e.LateFee, &e.CleaningFee, &e.MaintenanceCost, &e.TotalCost,
			&e.CustomerName, &e.Brand, &e.Model); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}
