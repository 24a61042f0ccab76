package get_upcoming_events

import (
	"context"
	"time"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	FetchUpcoming(ctx context.Context, kind domain.SlotKind, from time.Time, limit int) ([]domain.Slot, error)
}

// FeedCache интерфейс кеша ленты событий
// Может отсутствовать (nil) - тогда лента всегда читается из БД
type FeedCache interface {
	GetUpcoming(ctx context.Context, limit int) ([]domain.Slot, bool, error)
	SetUpcoming(ctx context.Context, limit int, slots []domain.Slot) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
