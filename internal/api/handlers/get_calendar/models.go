package get_calendar

import (
	"time"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
	getCalendar "github.com/m04kA/Pickleball-BookingService/internal/usecase/get_calendar"
)

// SlotResponse HTTP модель слота внутри календарного дня
type SlotResponse struct {
	ID                string `json:"id"`
	StartAt           string `json:"startAt"`
	StartTime         string `json:"startTime"`
	Location          string `json:"location"`
	CapacityRemaining int    `json:"capacityRemaining"`
	CapacityTotal     int    `json:"capacityTotal"`
}

// DayResponse HTTP модель одного дня календаря
type DayResponse struct {
	Day             int            `json:"day"`
	HasAvailability bool           `json:"hasAvailability"`
	Slots           []SlotResponse `json:"slots"`
}

// CalendarResponse HTTP модель календаря месяца
type CalendarResponse struct {
	Year         int           `json:"year"`
	Month        int           `json:"month"`
	Days         []DayResponse `json:"days"`
	FirstWeekday int           `json:"firstWeekday"`
	GridRows     int           `json:"gridRows"`
	GridCols     int           `json:"gridCols"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, fromDomainDay(d))
	}
	return &CalendarResponse{
		Year:         resp.Year,
		Month:        int(resp.Month),
		Days:         days,
		FirstWeekday: resp.FirstWeekday,
		GridRows:     resp.GridRows,
		GridCols:     resp.GridCols,
	}
}

func fromDomainDay(d domain.CalendarDay) DayResponse {
	slots := make([]SlotResponse, 0, len(d.Slots))
	for _, s := range d.Slots {
		slots = append(slots, SlotResponse{
			ID:                s.ID,
			StartAt:           s.StartAt.Format(time.RFC3339),
			StartTime:         s.StartTime.String(),
			Location:          s.Location,
			CapacityRemaining: s.CapacityRemaining,
			CapacityTotal:     s.CapacityTotal,
		})
	}
	return DayResponse{
		Day:             d.Day,
		HasAvailability: d.HasAvailability,
		Slots:           slots,
	}
}
