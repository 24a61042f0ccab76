package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Pickleball-BookingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockBookingRepo struct {
	bookings map[string]*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func testBooking(id, userID string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		SlotID:    "slot-1",
		UserID:    userID,
		CreatedAt: time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetByID_Success(t *testing.T) {
	repo := &mockBookingRepo{bookings: map[string]*domain.Booking{
		"booking-1": testBooking("booking-1", "user-1"),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "booking-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockBookingRepo{bookings: map[string]*domain.Booking{}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), "ghost", "user-1")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_ForeignBookingDenied(t *testing.T) {
	repo := &mockBookingRepo{bookings: map[string]*domain.Booking{
		"booking-1": testBooking("booking-1", "user-1"),
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), "booking-1", "user-2")
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_EmptyInput(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "", "user-1")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByID(context.Background(), "booking-1", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_RepositoryError(t *testing.T) {
	repo := &mockBookingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), "booking-1", "user-1")
	require.ErrorIs(t, err, ErrInternal)
}

func TestGetUserBookings(t *testing.T) {
	repo := &mockBookingRepo{bookings: map[string]*domain.Booking{
		"booking-1": testBooking("booking-1", "user-1"),
		"booking-2": testBooking("booking-2", "user-1"),
		"booking-3": testBooking("booking-3", "user-2"),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetUserBookings_EmptyUserID(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}
