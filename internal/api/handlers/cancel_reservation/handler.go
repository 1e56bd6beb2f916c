package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/reservations"
)

const (
	msgInvalidID        = "Некорректный идентификатор бронирования"
	msgInvalidBody      = "Некорректное тело запроса"
	msgNotFound         = "Бронирование не найдено"
	msgAlreadyCancelled = "Бронирование уже отменено"
	msgInternalError    = "Внутренняя ошибка сервера"
)

// Handler обработчик отмены бронирования
// POST /api/reservations/{id}/cancel (админ)
type Handler struct {
	service ReservationsService
	logger  Logger
}

// NewHandler создает обработчик отмены бронирования
func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type request struct {
	Reason string `json:"reason"`
}

// Handle обрабатывает запрос
// После отмены слот бронирования освобождается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req request
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			handlers.RespondBadRequest(w, msgInvalidBody)
			return
		}
	}

	res, err := h.service.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reservations.ErrInvalidTransition):
			handlers.RespondConflict(w, msgAlreadyCancelled)
		default:
			h.logger.Error("cancel_reservation: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewReservationView(res))
}
