package domain

// Default configuration values
const (
	// DefaultUpcomingLimit лимит слотов каждого типа в ленте ближайших событий
	DefaultUpcomingLimit = 5

	// MaxUpcomingLimit верхняя граница лимита ленты
	MaxUpcomingLimit = 50
)

// Calendar grid constants
// Сетка календаря фиксированная: 6 строк по 7 дней, пустые ячейки
// в начале и конце - артефакты отображения, данных не несут
const (
	CalendarGridRows = 6
	CalendarGridCols = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
