package get_upcoming_events

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/Pickleball-BookingService/internal/api/handlers"
	getUpcomingEvents "github.com/m04kA/Pickleball-BookingService/internal/usecase/get_upcoming_events"
)

const (
	msgInvalidLimit     = "некорректный параметр limit"
	msgStoreUnavailable = "не удалось загрузить события, попробуйте позже"
)

type Handler struct {
	useCase GetUpcomingEventsUseCase
	logger  Logger
}

func NewHandler(useCase GetUpcomingEventsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/upcoming?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /events/upcoming - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getUpcomingEvents.Request{LimitPerKind: limit})
	if err != nil {
		switch {
		case errors.Is(err, getUpcomingEvents.ErrInvalidInput):
			h.logger.Warn("GET /events/upcoming - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)

		case errors.Is(err, getUpcomingEvents.ErrStoreUnavailable):
			h.logger.Error("GET /events/upcoming - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /events/upcoming - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/upcoming - Returned %d events", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
