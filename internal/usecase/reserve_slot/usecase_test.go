package reserve_slot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
	slotRepo "github.com/m04kA/Pickleball-BookingService/internal/infra/storage/slot"
	authClient "github.com/m04kA/Pickleball-BookingService/internal/integrations/authservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// mockSlotStore разделяемое состояние слотов под мьютексом
type mockSlotStore struct {
	mu    sync.Mutex
	slots map[string]*domain.Slot
	reads atomic.Int32
}

func newMockSlotStore(slots ...*domain.Slot) *mockSlotStore {
	m := &mockSlotStore{slots: make(map[string]*domain.Slot)}
	for _, s := range slots {
		m.slots[s.ID] = s
	}
	return m
}

func (m *mockSlotStore) GetByIDForUpdate(ctx context.Context, id string) (*domain.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads.Add(1)

	s, ok := m.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSlotStore) DecrementCapacity(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[id]
	if !ok || s.CapacityRemaining <= 0 {
		return slotRepo.ErrSlotFull
	}
	s.CapacityRemaining--
	return nil
}

func (m *mockSlotStore) capacity(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[id].CapacityRemaining
}

// mockBookingStore журнал созданных бронирований под мьютексом
type mockBookingStore struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	failWith error
}

func (m *mockBookingStore) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}

	created := *b
	created.ID = fmt.Sprintf("booking-%d", len(m.bookings)+1)
	created.CreatedAt = time.Now()
	m.bookings = append(m.bookings, &created)
	return &created, nil
}

func (m *mockBookingStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

// mockAuthClient подтверждает любую непустую идентификацию
type mockAuthClient struct {
	failWith        error
	unauthenticated bool
	calls           atomic.Int32
}

func (m *mockAuthClient) GetIdentity(ctx context.Context, userID string) (*authClient.Identity, error) {
	m.calls.Add(1)
	if m.failWith != nil {
		return nil, m.failWith
	}
	return &authClient.Identity{
		UserID:          userID,
		IsAuthenticated: !m.unauthenticated,
	}, nil
}

// mockTxManager выполняет транзакции строго по одной, имитируя
// сериализуемый уровень изоляции
type mockTxManager struct {
	mu       sync.Mutex
	failWith error
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// mockFeedCache считает вызовы инвалидации
type mockFeedCache struct {
	invalidations atomic.Int32
}

func (m *mockFeedCache) Invalidate(ctx context.Context) error {
	m.invalidations.Add(1)
	return nil
}

func courtSlot(id string, capacity int) *domain.Slot {
	return &domain.Slot{
		ID:                id,
		Kind:              domain.KindCourt,
		StartAt:           time.Date(2026, time.September, 12, 10, 0, 0, 0, time.UTC),
		Location:          "Корт 1",
		CapacityRemaining: capacity,
		CapacityTotal:     capacity,
	}
}

func TestExecute_Success(t *testing.T) {
	slots := newMockSlotStore(courtSlot("slot-1", 4))
	bookings := &mockBookingStore{}
	cache := &mockFeedCache{}
	uc := NewUseCase(slots, bookings, &mockAuthClient{}, &mockTxManager{}, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.BookingID)
	assert.Equal(t, "slot-1", resp.SlotID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, 3, resp.CapacityRemaining)
	assert.Equal(t, 3, slots.capacity("slot-1"))
	assert.Equal(t, 1, bookings.count())
	assert.Equal(t, int32(1), cache.invalidations.Load())
}

func TestExecute_SlotFull(t *testing.T) {
	slots := newMockSlotStore(courtSlot("slot-1", 0))
	bookings := &mockBookingStore{}
	uc := NewUseCase(slots, bookings, &mockAuthClient{}, &mockTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserID: "user-1"})
	require.ErrorIs(t, err, ErrSlotFull)

	assert.Equal(t, 0, slots.capacity("slot-1"))
	assert.Equal(t, 0, bookings.count(), "отказ не должен оставлять бронирований")
}

func TestExecute_SlotNotFound(t *testing.T) {
	slots := newMockSlotStore()
	bookings := &mockBookingStore{}
	uc := NewUseCase(slots, bookings, &mockAuthClient{}, &mockTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "ghost", UserID: "user-1"})
	require.ErrorIs(t, err, ErrSlotNotFound)
	assert.Equal(t, 0, bookings.count())
}

func TestExecute_EmptyUserIDSkipsStore(t *testing.T) {
	slots := newMockSlotStore(courtSlot("slot-1", 4))
	auth := &mockAuthClient{}
	uc := NewUseCase(slots, &mockBookingStore{}, auth, &mockTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserID: ""})
	require.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Equal(t, int32(0), auth.calls.Load(), "без аутентификации внешних вызовов быть не должно")
	assert.Equal(t, int32(0), slots.reads.Load())
}

func TestExecute_EmptySlotID(t *testing.T) {
	uc := NewUseCase(newMockSlotStore(), &mockBookingStore{}, &mockAuthClient{}, &mockTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "", UserID: "user-1"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_IdentityNotFound(t *testing.T) {
	slots := newMockSlotStore(courtSlot("slot-1", 4))
	auth := &mockAuthClient{failWith: authClient.ErrIdentityNotFound}
	uc := NewUseCase(slots, &mockBookingStore{}, auth, &mockTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserID: "user-1"})
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, int32(0), slots.reads.Load())
}

func TestExecute_IdentityNotAuthenticated(t *testing.T) {
	slots := newMockSlotStore(courtSlot("slot-1", 4))
	auth := &mockAuthClient{unauthenticated: true}
	uc := NewUseCase(slots, &mockBookingStore{}, auth, &mockTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserID: "user-1"})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestExecute_TransactionFailure(t *testing.T) {
	slots := newMockSlotStore(courtSlot("slot-1", 4))
	bookings := &mockBookingStore{}
	tx := &mockTxManager{failWith: errors.New("serialization retries exhausted")}
	uc := NewUseCase(slots, bookings, &mockAuthClient{}, tx, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserID: "user-1"})
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 0, bookings.count())
}

func TestExecute_BookingWriteFailure(t *testing.T) {
	slots := newMockSlotStore(courtSlot("slot-1", 4))
	bookings := &mockBookingStore{failWith: errors.New("insert failed")}
	uc := NewUseCase(slots, bookings, &mockAuthClient{}, &mockTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserID: "user-1"})
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 0, bookings.count())
}

func TestExecute_ConcurrentReservations(t *testing.T) {
	const (
		capacity = 3
		requests = 10
	)

	slots := newMockSlotStore(courtSlot("slot-1", capacity))
	bookings := &mockBookingStore{}
	uc := NewUseCase(slots, bookings, &mockAuthClient{}, &mockTxManager{}, &mockFeedCache{}, nopLogger{})

	var successCount, fullCount, otherCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{
				SlotID: "slot-1",
				UserID: fmt.Sprintf("user-%d", n),
			})
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, ErrSlotFull):
				fullCount.Add(1)
			default:
				otherCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(capacity), successCount.Load(), "успешных бронирований ровно столько, сколько мест")
	assert.Equal(t, int32(requests-capacity), fullCount.Load())
	assert.Equal(t, int32(0), otherCount.Load())
	assert.Equal(t, 0, slots.capacity("slot-1"))
	assert.Equal(t, capacity, bookings.count())
}

func TestExecute_ConcurrentLastSeat(t *testing.T) {
	slots := newMockSlotStore(courtSlot("slot-1", 1))
	bookings := &mockBookingStore{}
	uc := NewUseCase(slots, bookings, &mockAuthClient{}, &mockTxManager{}, nil, nopLogger{})

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, user := range []string{"user-a", "user-b"} {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserID: u})
			errs <- err
		}(user)
	}
	wg.Wait()
	close(errs)

	var wins, losses int
	for err := range errs {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, ErrSlotFull)
			losses++
		}
	}

	assert.Equal(t, 1, wins, "последнее место достаётся ровно одному")
	assert.Equal(t, 1, losses)
	assert.Equal(t, 0, slots.capacity("slot-1"))
	assert.Equal(t, 1, bookings.count())
}
