package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"
)

type ledgerRepository struct {
	db DBTX
}

func NewLedgerRepository(db DBTX) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Create(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO transactions (
	              transaction_type, reference, booking_id, return_id, customer_name, vehicle_id,
	              transaction_date, rental_duration, base_revenue, cleaning_fee, maintenance_cost, late_fee, total_amount)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.Type, e.Reference, e.BookingID, e.ReturnID, e.CustomerName, e.VehicleID,
		e.Date, e.RentalDuration, e.BaseRevenue, e.CleaningFee, e.MaintenanceCost, e.LateFee, e.TotalAmount)
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	return err
}

func (r *ledgerRepository) History(ctx context.Context, rng domain.DateRange) ([]domain.LedgerHistoryEntry, error) {
	query := `SELECT t.transaction_id, t.transaction_type, t.reference, t.booking_id, t.return_id, t.customer_name, t.vehicle_id,
	                 t.transaction_date, t.rental_duration, t.base_revenue, t.cleaning_fee, t.maintenance_cost, t.late_fee, t.total_amount,
	                 v.brand, v.model
	          FROM transactions t
	          JOIN vehicles v ON t.vehicle_id = v.id`
	var args []any
	if !rng.IsZero() {
		query += ` WHERE t.transaction_date BETWEEN ? AND ?`
		args = append(args, rng.Start, rng.End)
	}
	query += ` ORDER BY t.transaction_date DESC, t.transaction_id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.LedgerHistoryEntry
	for rows.Next() {
		var e domain.LedgerHistoryEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Reference, &e.BookingID, &e.ReturnID, &e.CustomerName, &e.VehicleID,
			&e.Date, &e.RentalDuration, &e.BaseRevenue, &e.CleaningFee, &e.MaintenanceCost, &e.LateFee, &e.TotalAmount,
			&e.Brand, &e.Model); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

func (r *ledgerRepository) Summary(ctx context.Context, rng domain.DateRange) (*domain.LedgerSummary, error) {
	query := `SELECT COUNT(*),
	                 COALESCE(SUM(total_amount), 0),
	                 COALESCE(SUM(cleaning_fee), 0),
	                 COALESCE(SUM(maintenance_cost), 0),
	                 COALESCE(SUM(late_fee), 0)
	          FROM transactions`
	query, args := withDateRange(query, rng)

	s := &domain.LedgerSummary{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.TotalTransactions, &s.TotalRevenue, &s.TotalCleaningFees, &s.TotalMaintenanceCosts, &s.TotalLateFees)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ledgerRepository) Revenue(ctx context.Context, rng domain.DateRange) (*domain.RevenueMetrics, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0),
	                 COUNT(*),
	                 COALESCE(AVG(total_amount), 0)
	          FROM transactions`
	query, args := withDateRange(query, rng)

	m := &domain.RevenueMetrics{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&m.TotalRevenue, &m.TotalTransactions, &m.AverageTransactionValue)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *ledgerRepository) OperationalCosts(ctx context.Context, rng domain.DateRange) (*domain.OperationalCosts, error) {
	query := `SELECT COALESCE(SUM(cleaning_fee), 0),
	                 COALESCE(SUM(maintenance_cost), 0),
	                 COALESCE(SUM(late_fee), 0),
	                 COALESCE(SUM(COALESCE(cleaning_fee, 0) + COALESCE(maintenance_cost, 0) + COALESCE(late_fee, 0)), 0)
	          FROM transactions`
	query, args := withDateRange(query, rng)

	m := &domain.OperationalCosts{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&m.TotalCleaningCosts, &m.TotalMaintenanceCosts, &m.TotalLateFees, &m.TotalOperationalCosts)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *ledgerRepository) Profit(ctx context.Context, rng domain.DateRange) (*domain.ProfitMetrics, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0),
	                 COALESCE(SUM(COALESCE(cleaning_fee, 0) + COALESCE(maintenance_cost, 0) + COALESCE(late_fee, 0)), 0),
	                 COALESCE(SUM(total_amount), 0) - COALESCE(SUM(COALESCE(cleaning_fee, 0) + COALESCE(maintenance_cost, 0) + COALESCE(late_fee, 0)), 0)
	          FROM transactions`
	query, args := withDateRange(query, rng)

	m := &domain.ProfitMetrics{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&m.TotalRevenue, &m.TotalCosts, &m.NetProfit)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *ledgerRepository) VehicleReport(ctx context.Context, vehicleID int64, rng domain.DateRange) (*domain.VehicleReport, error) {
	query := `SELECT v.brand, v.model, v.mileage,
	                 COUNT(t.transaction_id),
	                 COALESCE(SUM(t.total_amount), 0),
	                 COALESCE(SUM(COALESCE(t.cleaning_fee, 0) + COALESCE(t.maintenance_cost, 0) + COALESCE(t.late_fee, 0)), 0),
	                 COALESCE(SUM(t.total_amount), 0) - COALESCE(SUM(COALESCE(t.cleaning_fee, 0) + COALESCE(t.maintenance_cost, 0) + COALESCE(t.late_fee, 0)), 0)
	          FROM vehicles v
	          LEFT JOIN transactions t ON v.id = t.vehicle_id`
	args := []any{}
	if !rng.IsZero() {
		query += ` AND t.transaction_date BETWEEN ? AND ?`
		args = append(args, rng.Start, rng.End)
	}
	query += ` WHERE v.id = ? GROUP BY v.id`
	args = append(args, vehicleID)

	m := &domain.VehicleReport{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&m.Brand, &m.Model, &m.Mileage, &m.TotalTransactions, &m.TotalRevenue, &m.TotalCosts, &m.NetProfit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %d: %w", vehicleID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func withDateRange(query string, rng domain.DateRange) (string, []any) {
	if rng.IsZero() {
		return query, nil
	}
	return query + ` WHERE transaction_date BETWEEN ? AND ?`, []any{rng.Start, rng.End}
}
