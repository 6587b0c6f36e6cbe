package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"
)

type vehicleRepository struct {
	db DBTX
}

func NewVehicleRepository(db DBTX) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (brand, model, mileage, daily_rental_price, maintenance_cost_per_kilometer, is_available)
	          VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, v.Brand, v.Model, v.Mileage, v.DailyRentalPrice, v.MaintenanceCostPerKm, v.IsAvailable)
	if err != nil {
		return err
	}
	v.ID, err = res.LastInsertId()
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, brand, model, mileage, daily_rental_price, maintenance_cost_per_kilometer, is_available
	          FROM vehicles WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Brand, &v.Model, &v.Mileage, &v.DailyRentalPrice, &v.MaintenanceCostPerKm, &v.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, brand, model, mileage, daily_rental_price, maintenance_cost_per_kilometer, is_available
	          FROM vehicles ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Mileage, &v.DailyRentalPrice, &v.MaintenanceCostPerKm, &v.IsAvailable); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET is_available = ? WHERE id = ?`, available, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (r *vehicleRepository) SetMileage(ctx context.Context, id int64, mileage int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET mileage = ? WHERE id = ?`, mileage, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (r *vehicleRepository) MileageStats(ctx context.Context) (*domain.MileageMetrics, error) {
	m := &domain.MileageMetrics{}
	query := `SELECT COUNT(*),
	                 COALESCE(SUM(mileage), 0),
	                 COALESCE(AVG(mileage), 0),
	                 COALESCE(MIN(mileage), 0),
	                 COALESCE(MAX(mileage), 0)
	          FROM vehicles`
	err := r.db.QueryRowContext(ctx, query).Scan(
		&m.TotalVehicles, &m.TotalMileage, &m.AverageMileage, &m.MinMileage, &m.MaxMileage)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("vehicle %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
