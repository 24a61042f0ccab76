package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotFull возвращается, когда в слоте не осталось свободных мест
	// и условное списание не затронуло ни одной строки
	ErrSlotFull = errors.New("slot.repository: slot has no remaining capacity")

	// ErrMalformedRecord возвращается, когда строка из БД не проходит валидацию
	// (неизвестный тип слота, отрицательная вместимость, нулевое время начала)
	ErrMalformedRecord = errors.New("slot.repository: malformed slot record")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
