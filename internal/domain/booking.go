package domain

import "time"

// Booking запись о бронировании места в слоте
// Создаётся ровно один раз при успешном бронировании и никогда не изменяется.
// SlotID - слабая ссылка на слот (слот не владеет бронированиями)
type Booking struct {
	ID        string
	SlotID    string
	UserID    string
	CreatedAt time.Time // Назначается сервером при создании
}
