package reserve_slot

import (
	"time"

	reserveSlot "github.com/m04kA/Pickleball-BookingService/internal/usecase/reserve_slot"
)

// ReserveSlotRequest HTTP request model
// ID пользователя приходит не в теле, а из Auth middleware
type ReserveSlotRequest struct {
	SlotID string `json:"slotId"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	BookingID         string `json:"bookingId"`
	SlotID            string `json:"slotId"`
	UserID            string `json:"userId"`
	CapacityRemaining int    `json:"capacityRemaining"`
	CreatedAt         string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *ReservationResponse {
	return &ReservationResponse{
		BookingID:         resp.BookingID,
		SlotID:            resp.SlotID,
		UserID:            resp.UserID,
		CapacityRemaining: resp.CapacityRemaining,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
