package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"
)

type maintenanceRepository struct {
	db DBTX
}

func NewMaintenanceRepository(db DBTX) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	query := `INSERT INTO maintenance (vehicle_id, maintenance_date, mileage, cost, description, is_completed)
	          VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, m.VehicleID, m.Date, m.Mileage, m.Cost, m.Description, m.IsCompleted)
	if err != nil {
		return err
	}
	m.ID, err = res.LastInsertId()
	return err
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int64) (*domain.Maintenance, error) {
	m := &domain.Maintenance{}
	query := `SELECT maintenance_id, vehicle_id, maintenance_date, mileage, cost, description, is_completed
	          FROM maintenance WHERE maintenance_id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.VehicleID, &m.Date, &m.Mileage, &m.Cost, &m.Description, &m.IsCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("maintenance record %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) MarkCompleted(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE maintenance SET is_completed = 1 WHERE maintenance_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("maintenance record %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *maintenanceRepository) History(ctx context.Context) ([]domain.MaintenanceHistoryEntry, error) {
	query := `SELECT m.maintenance_id, m.vehicle_id, m.maintenance_date, m.mileage, m.cost, m.description, m.is_completed,
	                 v.brand, v.model
	          FROM maintenance m
	          JOIN vehicles v ON m.vehicle_id = v.id
	          ORDER BY m.maintenance_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.MaintenanceHistoryEntry
	for rows.Next() {
		var e domain.MaintenanceHistoryEntry
		if err := rows.Scan(&e.ID, &e.VehicleID, &e.Date, &e.Mileage, &e.Cost, &e.Description, &e.IsCompleted, &e.Brand, &e.Model); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

func (r *maintenanceRepository) HasIncomplete(ctx context.Context, vehicleID int64) (bool, error) {
	var count int64
	query := `SELECT COUNT(*) FROM maintenance WHERE vehicle_id = ? AND is_completed = 0`
	if err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
