package get_upcoming_events

import (
	"sort"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

// mergeSlots объединяет две ленты слотов в одну, отсортированную
// по времени начала по возрастанию
//
// Сортировка стабильная: при совпадении времени начала сохраняется
// исходный относительный порядок - корты идут раньше занятий, потому что
// конкатенируются первыми. Слоты с нулевой вместимостью не отбрасываются:
// отображение и возможность бронирования - независимые вещи, попытка
// забронировать заполненный слот завершится отказом на этапе бронирования
func mergeSlots(courts, classes []domain.Slot) []domain.Slot {
	merged := make([]domain.Slot, 0, len(courts)+len(classes))
	merged = append(merged, courts...)
	merged = append(merged, classes...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartAt.Before(merged[j].StartAt)
	})

	return merged
}
