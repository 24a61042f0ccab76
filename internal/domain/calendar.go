package domain

import "time"

// CalendarDay производное представление одного дня календаря
// Не хранится в БД - пересчитывается при каждой загрузке месячного окна
type CalendarDay struct {
	Year  int
	Month time.Month
	Day   int

	// HasAvailability true, если в этот день есть хотя бы один слот
	// НЕ учитывает оставшуюся вместимость: день с полностью занятым
	// слотом всё равно помечается доступным (поведение исходной системы)
	HasAvailability bool

	// Slots слоты этого дня в порядке выборки из БД
	Slots []Slot
}

// DaysInMonth возвращает количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	// Нулевой день следующего месяца - последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday возвращает день недели первого числа месяца (0 = воскресенье)
// Используется для расчёта пустых ячеек в начале календарной сетки
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}
