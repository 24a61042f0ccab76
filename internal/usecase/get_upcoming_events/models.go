package get_upcoming_events

import (
	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

// Request модель запроса ленты ближайших событий
type Request struct {
	// LimitPerKind максимум слотов каждого типа (кортов и занятий)
	// 0 означает лимит по умолчанию
	LimitPerKind int
}

// Response модель ответа с объединённой лентой
// Events отсортированы по времени начала по возрастанию;
// длина не превышает 2 x LimitPerKind
type Response struct {
	Events []domain.Slot
}
