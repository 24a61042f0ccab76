package domain

import (
	"time"

	"github.com/m04kA/Pickleball-BookingService/pkg/types"
)

// SlotKind тип слота
type SlotKind string

const (
	// KindCourt слот открытой игры на корте
	KindCourt SlotKind = "court"
	// KindClass слот занятия с инструктором
	KindClass SlotKind = "class"
)

// IsValid возвращает true для известных типов слотов
func (k SlotKind) IsValid() bool {
	return k == KindCourt || k == KindClass
}

// Slot бронируемый слот с ограниченным количеством мест
// Вариант определяется полем Kind: для кортов Name пустое,
// для занятий Name содержит название занятия
type Slot struct {
	ID        string
	Kind      SlotKind
	StartAt   time.Time        // Дата и время начала
	StartTime types.TimeString // Время начала для отображения ("10:00")
	Location  string
	Name      string // Название занятия (только для Kind = class)

	// CapacityRemaining количество свободных мест
	// Инвариант: >= 0, уменьшается только через успешное бронирование
	CapacityRemaining int
	CapacityTotal     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFull возвращает true, если свободных мест не осталось
func (s *Slot) IsFull() bool {
	return s.CapacityRemaining <= 0
}

// IsCourt возвращает true для слота открытой игры
func (s *Slot) IsCourt() bool {
	return s.Kind == KindCourt
}

// IsClass возвращает true для слота занятия
func (s *Slot) IsClass() bool {
	return s.Kind == KindClass
}

// StartsOnDay возвращает true, если слот начинается в указанный календарный день
// Сравнение выполняется в локальном времени слота
func (s *Slot) StartsOnDay(year int, month time.Month, day int) bool {
	y, m, d := s.StartAt.Date()
	return y == year && m == month && d == day
}
