package get_calendar

import (
	"time"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

// Request модель запроса календаря на месяц
type Request struct {
	Year  int
	Month time.Month // 1..12
}

// Response модель ответа с календарём месяца
type Response struct {
	Year  int
	Month time.Month

	// Days дни месяца по порядку: Days[0] - первое число
	Days []domain.CalendarDay

	// FirstWeekday день недели первого числа (0 = воскресенье)
	// Количество пустых ячеек перед первым числом в сетке
	FirstWeekday int

	// GridRows и GridCols размер фиксированной сетки отображения
	// Пустые ячейки в начале и конце - артефакты отображения без данных
	GridRows int
	GridCols int
}
