package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"sharemycar/internal/domain"
	"sharemycar/internal/repository"
	"sharemycar/internal/repository/sqlite"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStore_ExecTx(t *testing.T) {
	ctx := context.Background()

	t.Run("CommitsOnSuccess", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		store := sqlite.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO vehicles").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE vehicles SET is_available").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = store.ExecTx(ctx, func(tx repository.Store) error {
			v := &domain.Vehicle{Brand: "Honda", Model: "Civic", Mileage: 30000, DailyRentalPrice: 45, MaintenanceCostPerKm: 0.08, IsAvailable: true}
			if err := tx.Vehicles().Create(ctx, v); err != nil {
				return err
			}
			return tx.Vehicles().SetAvailability(ctx, v.ID, false)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		store := sqlite.NewStore(db)
		boom := errors.New("settlement rejected")

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO vehicles").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectRollback()

		err = store.ExecTx(ctx, func(tx repository.Store) error {
			v := &domain.Vehicle{Brand: "Honda", Model: "Civic", Mileage: 30000, DailyRentalPrice: 45, MaintenanceCostPerKm: 0.08, IsAvailable: true}
			if err := tx.Vehicles().Create(ctx, v); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnBeginFailure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		store := sqlite.NewStore(db)

		mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

		err = store.ExecTx(ctx, func(tx repository.Store) error {
			t.Fatal("callback must not run when the transaction cannot start")
			return nil
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
