package get_upcoming_events

import (
	"time"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
	getUpcomingEvents "github.com/m04kA/Pickleball-BookingService/internal/usecase/get_upcoming_events"
)

// EventResponse HTTP модель события ленты
// Поле name присутствует только у занятий
type EventResponse struct {
	ID                string `json:"id"`
	Kind              string `json:"kind"`
	StartAt           string `json:"startAt"`
	StartTime         string `json:"startTime"`
	Location          string `json:"location"`
	Name              string `json:"name,omitempty"`
	CapacityRemaining int    `json:"capacityRemaining"`
	CapacityTotal     int    `json:"capacityTotal"`
}

// EventsResponse HTTP модель ответа с лентой событий
type EventsResponse struct {
	Events []EventResponse `json:"events"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getUpcomingEvents.Response) *EventsResponse {
	events := make([]EventResponse, 0, len(resp.Events))
	for _, e := range resp.Events {
		events = append(events, fromDomainSlot(e))
	}
	return &EventsResponse{Events: events}
}

func fromDomainSlot(s domain.Slot) EventResponse {
	resp := EventResponse{
		ID:                s.ID,
		Kind:              string(s.Kind),
		StartAt:           s.StartAt.Format(time.RFC3339),
		StartTime:         s.StartTime.String(),
		Location:          s.Location,
		CapacityRemaining: s.CapacityRemaining,
		CapacityTotal:     s.CapacityTotal,
	}
	if s.IsClass() {
		resp.Name = s.Name
	}
	return resp
}
