package reserve_slot

import "errors"

var (
	// ErrNotAuthenticated возвращается, когда пользователь не аутентифицирован
	// Обращений к хранилищу при этом не выполняется
	ErrNotAuthenticated = errors.New("reserve_slot: user is not authenticated")

	// ErrSlotNotFound возвращается, когда слот удалён или истёк между
	// показом ленты и попыткой бронирования
	ErrSlotNotFound = errors.New("reserve_slot: slot not found")

	// ErrSlotFull возвращается, когда свободных мест не осталось
	// Семантический отказ: повтор бесполезен, место не появится
	ErrSlotFull = errors.New("reserve_slot: slot has no remaining capacity")

	// ErrStoreUnavailable возвращается при транзиентной ошибке хранилища,
	// в том числе при исчерпании лимита повторов сериализуемой транзакции.
	// В отличие от ErrSlotFull, повтор запроса может помочь
	ErrStoreUnavailable = errors.New("reserve_slot: store unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")
)
