package slot

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func slotRows(slots ...domain.Slot) *sqlmock.Rows {
	rows := sqlmock.NewRows(slotColumns)
	for _, s := range slots {
		rows.AddRow(
			s.ID,
			string(s.Kind),
			s.StartAt,
			s.StartTime.String(),
			s.Location,
			s.Name,
			s.CapacityRemaining,
			s.CapacityTotal,
			s.CreatedAt,
			s.UpdatedAt,
		)
	}
	return rows
}

func TestFetchUpcoming(t *testing.T) {
	repo, mock := newMockRepo(t)

	from := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	expected := domain.Slot{
		ID:                "slot-1",
		Kind:              domain.KindCourt,
		StartAt:           from.Add(24 * time.Hour),
		Location:          "Корт 1",
		CapacityRemaining: 4,
		CapacityTotal:     4,
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM slots WHERE kind = $1 AND start_at >= $2 ORDER BY start_at ASC LIMIT 5")).
		WithArgs("court", from).
		WillReturnRows(slotRows(expected))

	slots, err := repo.FetchUpcoming(context.Background(), domain.KindCourt, from, 5)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	assert.Equal(t, "slot-1", slots[0].ID)
	assert.Equal(t, domain.KindCourt, slots[0].Kind)
	assert.Equal(t, 4, slots[0].CapacityRemaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchUpcoming_MalformedKindRejectsBatch(t *testing.T) {
	repo, mock := newMockRepo(t)

	from := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	good := domain.Slot{
		ID:                "slot-1",
		Kind:              domain.KindCourt,
		StartAt:           from.Add(time.Hour),
		CapacityRemaining: 2,
		CapacityTotal:     4,
	}
	bad := good
	bad.ID = "slot-2"
	bad.Kind = "tournament"

	mock.ExpectQuery("FROM slots").
		WillReturnRows(slotRows(good, bad))

	slots, err := repo.FetchUpcoming(context.Background(), domain.KindCourt, from, 5)
	require.ErrorIs(t, err, ErrMalformedRecord)
	assert.Nil(t, slots, "частичный результат не возвращается")
}

func TestFetchWindow(t *testing.T) {
	repo, mock := newMockRepo(t)

	from := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	inWindow := domain.Slot{
		ID:                "slot-1",
		Kind:              domain.KindCourt,
		StartAt:           from.AddDate(0, 0, 14),
		CapacityRemaining: 4,
		CapacityTotal:     4,
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM slots WHERE kind = $1 AND start_at >= $2 AND start_at < $3 ORDER BY start_at ASC")).
		WithArgs("court", from, to).
		WillReturnRows(slotRows(inWindow))

	slots, err := repo.FetchWindow(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "slot-1", slots[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM slots WHERE id = $1")).
		WithArgs("ghost").
		WillReturnRows(slotRows())

	_, err := repo.GetByIDForUpdate(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestGetByIDForUpdate_NegativeCapacityRejected(t *testing.T) {
	repo, mock := newMockRepo(t)

	broken := domain.Slot{
		ID:                "slot-1",
		Kind:              domain.KindCourt,
		StartAt:           time.Date(2026, time.September, 10, 10, 0, 0, 0, time.UTC),
		CapacityRemaining: -1,
		CapacityTotal:     4,
	}

	mock.ExpectQuery("FROM slots").
		WithArgs("slot-1").
		WillReturnRows(slotRows(broken))

	_, err := repo.GetByIDForUpdate(context.Background(), "slot-1")
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestDecrementCapacity(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE slots SET capacity_remaining = capacity_remaining - 1")).
		WithArgs("slot-1", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DecrementCapacity(context.Background(), "slot-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementCapacity_NoRowsMeansFull(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE slots").
		WithArgs("slot-1", 0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DecrementCapacity(context.Background(), "slot-1")
	require.ErrorIs(t, err, ErrSlotFull)
}
