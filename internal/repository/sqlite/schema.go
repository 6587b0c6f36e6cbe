package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		brand TEXT NOT NULL,
		model TEXT NOT NULL,
		mileage INTEGER NOT NULL,
		daily_rental_price INTEGER NOT NULL,
		maintenance_cost_per_kilometer REAL NOT NULL,
		is_available BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS booking (
		booking_id    INTEGER PRIMARY KEY,
		customer_name TEXT    NOT NULL,
		vehicle_id    INTEGER NOT NULL,
		start_date    DATE    NOT NULL,
		due_date      DATE    NOT NULL,
		est_days      INTEGER NOT NULL,
		est_km        INTEGER NOT NULL,
		est_cost      REAL    NOT NULL,
		FOREIGN KEY (vehicle_id) REFERENCES vehicles(id)
			ON DELETE RESTRICT
			ON UPDATE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS returns (
		return_id        INTEGER PRIMARY KEY,
		booking_id       INTEGER NOT NULL,
		actual_km        INTEGER NOT NULL,
		return_date      DATE    NOT NULL,
		days_late        INTEGER NOT NULL,
		late_fee         REAL    NOT NULL,
		cleaning_fee     REAL    NOT NULL,
		maintenance_cost REAL    NOT NULL,
		total_cost       REAL    NOT NULL,
		FOREIGN KEY (booking_id) REFERENCES booking(booking_id)
			ON DELETE RESTRICT
			ON UPDATE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS maintenance (
		maintenance_id   INTEGER PRIMARY KEY,
		vehicle_id       INTEGER NOT NULL,
		maintenance_date DATE    NOT NULL,
		mileage          INTEGER NOT NULL,
		cost             REAL    NOT NULL,
		description      TEXT    NOT NULL,
		is_completed     BOOLEAN NOT NULL DEFAULT 0,
		FOREIGN KEY (vehicle_id) REFERENCES vehicles(id)
			ON DELETE RESTRICT
			ON UPDATE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id   INTEGER PRIMARY KEY,
		transaction_type TEXT    NOT NULL,
		reference        TEXT    NOT NULL,
		booking_id       INTEGER,
		return_id        INTEGER,
		customer_name    TEXT    NOT NULL,
		vehicle_id       INTEGER NOT NULL,
		transaction_date DATE    NOT NULL,
		rental_duration  INTEGER,
		base_revenue     REAL    NOT NULL,
		cleaning_fee     REAL,
		maintenance_cost REAL,
		late_fee         REAL,
		total_amount     REAL    NOT NULL,
		FOREIGN KEY (booking_id) REFERENCES booking(booking_id)
			ON DELETE RESTRICT
			ON UPDATE CASCADE,
		FOREIGN KEY (return_id) REFERENCES returns(return_id)
			ON DELETE RESTRICT
			ON UPDATE CASCADE,
		FOREIGN KEY (vehicle_id) REFERENCES vehicles(id)
			ON DELETE RESTRICT
			ON UPDATE CASCADE
	)`,
}

// EnsureSchema creates the five tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
