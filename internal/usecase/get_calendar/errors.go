package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrStoreUnavailable возвращается при ошибке чтения месячного окна
	// Вызывающий код обязан показать ошибку, а не пустой календарь
	ErrStoreUnavailable = errors.New("get_calendar: store unavailable")
)
