package get_booking

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

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		SlotID:    b.SlotID,
		UserID:    b.UserID,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
