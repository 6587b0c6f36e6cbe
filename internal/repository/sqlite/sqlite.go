package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"sharemycar/internal/repository"

	_ "github.com/mattn/go-sqlite3"
)

// DBTX is the querying surface shared by *sql.DB and *sql.Tx, so the same
// repository code serves both direct calls and transactional scopes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements repository.Store on a local SQLite database file.
type Store struct {
	db          *sql.DB
	vehicles    repository.VehicleRepository
	bookings    repository.BookingRepository
	returns     repository.ReturnRepository
	maintenance repository.MaintenanceRepository
	ledger      repository.LedgerRepository
}

// Open opens the SQLite database at path with foreign keys enabled.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_fk=1")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	// A single writer; SQLite serializes everything anyway.
	db.SetMaxOpenConns(1)
	return db, nil
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q DBTX) *Store {
	return &Store{
		db:          db,
		vehicles:    NewVehicleRepository(q),
		bookings:    NewBookingRepository(q),
		returns:     NewReturnRepository(q),
		maintenance: NewMaintenanceRepository(q),
		ledger:      NewLedgerRepository(q),
	}
}

func (s *Store) Vehicles() repository.VehicleRepository       { return s.vehicles }
func (s *Store) Bookings() repository.BookingRepository       { return s.bookings }
func (s *Store) Returns() repository.ReturnRepository         { return s.returns }
func (s *Store) Maintenance() repository.MaintenanceRepository { return s.maintenance }
func (s *Store) Ledger() repository.LedgerRepository          { return s.ledger }

// ExecTx runs fn against a transaction-bound store. The transaction is rolled
// back on any error and on every early exit path.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(newStore(s.db, tx)); err != nil {
		return err
	}
	return tx.Commit()
}
