package reserve_slot

import "time"

// Request модель запроса на бронирование места в слоте
type Request struct {
	SlotID string // ID слота
	UserID string // ID пользователя из AuthService
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID         string    // ID созданного бронирования
	SlotID            string    // ID слота
	UserID            string    // ID пользователя
	CapacityRemaining int       // Мест осталось после списания
	CreatedAt         time.Time // Время создания (назначено сервером)
}
