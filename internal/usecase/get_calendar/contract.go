package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// FetchWindow получает слоты кортов в полуоткрытом окне [from, to)
	FetchWindow(ctx context.Context, from, to time.Time) ([]domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
