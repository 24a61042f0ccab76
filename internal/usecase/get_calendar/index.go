package get_calendar

import (
	"time"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

// indexByDay раскладывает слоты месячного окна по календарным дням
//
// День помечается доступным, если на него приходится хотя бы один слот.
// Оставшаяся вместимость при этом НЕ учитывается: день, все слоты которого
// полностью заняты, всё равно помечается доступным - так вела себя исходная
// система, попытка бронирования в такой день завершится отказом SlotFull.
// Порядок слотов внутри дня совпадает с порядком выборки из БД.
// Функция детерминирована: повторный вызов на том же входе даёт тот же результат
func indexByDay(slots []domain.Slot, year int, month time.Month) []domain.CalendarDay {
	daysInMonth := domain.DaysInMonth(year, month)
	days := make([]domain.CalendarDay, daysInMonth)

	for i := range days {
		days[i] = domain.CalendarDay{
			Year:  year,
			Month: month,
			Day:   i + 1,
			Slots: []domain.Slot{},
		}
	}

	for _, s := range slots {
		_, _, d := s.StartAt.Date()
		if !s.StartsOnDay(year, month, d) {
			// Слот вне запрошенного месяца - защита от некорректного окна выборки
			continue
		}
		days[d-1].Slots = append(days[d-1].Slots, s)
		days[d-1].HasAvailability = true
	}

	return days
}

// monthWindow возвращает полуоткрытое окно [первое число месяца, первое число
// следующего месяца) в локальном времени
func monthWindow(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)
	return from, to
}
