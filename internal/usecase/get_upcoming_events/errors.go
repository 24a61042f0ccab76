package get_upcoming_events

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_upcoming_events: invalid input data")

	// ErrStoreUnavailable возвращается, когда не удалось прочитать хотя бы
	// одну из коллекций слотов - частичная лента не отдаётся
	ErrStoreUnavailable = errors.New("get_upcoming_events: store unavailable")
)
