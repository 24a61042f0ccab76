package models

import (
	"time"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

// BookingResponse модель бронирования для выдачи наружу
type BookingResponse struct {
	ID        string
	SlotID    string
	UserID    string
	CreatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
}

// FromDomainBooking конвертирует domain.Booking в модель ответа
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		SlotID:    b.SlotID,
		UserID:    b.UserID,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в модель ответа
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
