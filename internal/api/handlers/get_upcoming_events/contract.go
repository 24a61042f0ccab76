package get_upcoming_events

import (
	"context"

	getUpcomingEvents "github.com/m04kA/Pickleball-BookingService/internal/usecase/get_upcoming_events"
)

type GetUpcomingEventsUseCase interface {
	Execute(ctx context.Context, req *getUpcomingEvents.Request) (*getUpcomingEvents.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
