package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Pickleball-BookingService/internal/api/handlers"
	"github.com/m04kA/Pickleball-BookingService/internal/api/middleware"
	"github.com/m04kA/Pickleball-BookingService/internal/service/bookings"
)

const (
	msgNotAuthenticated = "требуется аутентификация"
	msgAccessDenied     = "доступ к чужим бронированиям запрещен"
	msgInvalidRequest   = "некорректный идентификатор пользователя"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
// История доступна только самому пользователю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authedUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID != authedUserID {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: path_user=%s, authed_user=%s",
			userID, authedUserID)
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Returned %d bookings: user_id=%s",
		len(result.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
