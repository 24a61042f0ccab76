package reserve_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/Pickleball-BookingService/internal/api/handlers"
	"github.com/m04kA/Pickleball-BookingService/internal/api/middleware"
	reserveSlot "github.com/m04kA/Pickleball-BookingService/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotAuthenticated   = "требуется аутентификация"
	msgSlotNotFound       = "слот не найден, обновите список событий"
	msgSlotFull           = "свободных мест не осталось"
	msgStoreUnavailable   = "сервис временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
// Коды ответов различают семантический отказ и транзиентную ошибку:
// 409 (мест нет, повтор бесполезен) против 503 (хранилище недоступно,
// повтор может помочь)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reserveSlot.Request{
		SlotID: req.SlotID,
		UserID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrNotAuthenticated):
			h.logger.Warn("POST /reservations - Not authenticated: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgNotAuthenticated)

		case errors.Is(err, reserveSlot.ErrSlotNotFound):
			h.logger.Warn("POST /reservations - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, reserveSlot.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: slot_id=%s, user_id=%s", req.SlotID, userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reserveSlot.ErrStoreUnavailable):
			h.logger.Error("POST /reservations - Store unavailable: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed: slot_id=%s, user_id=%s, error=%v",
				req.SlotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: booking_id=%s, slot_id=%s, user_id=%s",
		result.BookingID, req.SlotID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
