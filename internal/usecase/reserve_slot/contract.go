package reserve_slot

import (
	"context"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
	"github.com/m04kA/Pickleball-BookingService/internal/integrations/authservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Slot, error)
	DecrementCapacity(ctx context.Context, id string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	GetIdentity(ctx context.Context, userID string) (*authservice.Identity, error)
}

// TransactionManager интерфейс для управления транзакциями
// DoSerializable обязан повторять fn при конфликтах конкурирующих записей
// до успеха, бизнес-ошибки или исчерпания лимита повторов
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// FeedCache интерфейс инвалидации кеша ленты событий
// Может отсутствовать (nil)
type FeedCache interface {
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
