package get_user_bookings

import (
	"time"

	"github.com/m04kA/Pickleball-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP модель бронирования
type BookingResponse struct {
	ID        string `json:"id"`
	SlotID    string `json:"slotId"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

// BookingListResponse HTTP модель списка бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(list *models.BookingListResponse) *BookingListResponse {
	bookings := make([]BookingResponse, 0, len(list.Bookings))
	for _, b := range list.Bookings {
		bookings = append(bookings, BookingResponse{
			ID:        b.ID,
			SlotID:    b.SlotID,
			UserID:    b.UserID,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		})
	}
	return &BookingListResponse{Bookings: bookings}
}
