package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func TestRepositories_PropagateStorageFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("GetContract", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "contracts"`).WillReturnError(errConnRefused)

		_, err := NewDefaultContractRepository(db).GetContractByID(ctx, "c-1")
		assert.ErrorIs(t, err, domain.ErrStorageFailure)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ProcessContractOperationRollsBack", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE id = \$1 .*FOR UPDATE`).WillReturnError(errConnRefused)
		mock.ExpectRollback()

		_, err := NewDefaultContractRepository(db).ProcessContractOperation(ctx, "c-1", func(current *domain.Contract) (*domain.ContractOperation, error) {
			t.Fatal("decide must not run when the lock fails")
			return nil, nil
		})
		assert.ErrorIs(t, err, domain.ErrStorageFailure)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SearchCustomers", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "customers"`).WillReturnError(errConnRefused)

		_, err := NewDefaultCustomerRepository(db).SearchCustomers(ctx, "s-1", "somchai", 10)
		assert.ErrorIs(t, err, domain.ErrStorageFailure)
	})

	t.Run("CountByStatus", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS contracts FROM "contracts"`).WillReturnError(errConnRefused)

		_, err := NewDefaultStatsRepository(db).CountByStatus(ctx, "s-1", domain.DateRange{})
		assert.ErrorIs(t, err, domain.ErrStorageFailure)
	})

	t.Run("NotFoundIsNotAStorageFailure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "stores"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewDefaultStoreRepository(db).GetStoreByID(ctx, "s-1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NotErrorIs(t, err, domain.ErrStorageFailure)
	})
}
