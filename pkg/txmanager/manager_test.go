package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Pickleball-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Pickleball-BookingService/pkg/metrics"
)

// Метрики регистрируются в глобальном реестре prometheus,
// поэтому коллектор общий для всех тестов пакета
var testMetrics = metrics.New("txmanager-test")

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTransactionManager(dbmetrics.Wrap(db, testMetrics)), mock
}

// layeredConflict собирает ошибку той же формы, какую возвращают
// репозитории и use case: конфликт сериализации на дне цепочки,
// два уровня обёрток поверх него
func layeredConflict() error {
	cause := &pq.Error{Code: "40001"}
	storageErr := fmt.Errorf("%w: GetByIDForUpdate - scan slot: %w",
		errors.New("storage.slot: failed to scan row"), cause)
	return fmt.Errorf("%w: failed to read slot: %w",
		errors.New("reserve_slot: store unavailable"), storageErr)
}

func TestDoSerializable_Success(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var sawTx bool
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		sawTx = dbmetrics.IsInTransaction(ctx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, sawTx, "транзакция должна попадать в контекст")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesWrappedRepositoryConflict(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return layeredConflict()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts, "конфликт под обёртками репозитория и use case должен повторяться")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesConflictAtCommit(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectBegin()
	mock.ExpectCommit()

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts, "конфликт на COMMIT должен повторяться")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_ExhaustsRetries(t *testing.T) {
	m, mock := newManager(t)

	for i := 0; i <= maxSerializationRetries; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return layeredConflict()
	})

	require.ErrorIs(t, err, ErrSerializationFailure)
	assert.Equal(t, maxSerializationRetries+1, attempts)
}

func TestDoSerializable_BusinessErrorNotRetried(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	businessErr := errors.New("slot is full")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return businessErr
	})

	require.ErrorIs(t, err, businessErr)
	assert.Equal(t, 1, attempts, "бизнес-ошибка не повторяется")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_DeadlockRetried(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return &pq.Error{Code: "40P01"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}
