package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	"github.com/m04kA/BMC-HallBookingService/internal/service/reservations"
)

const (
	msgInvalidID         = "Некорректный идентификатор бронирования"
	msgInvalidBody       = "Некорректное тело запроса"
	msgNotFound          = "Бронирование не найдено"
	msgInvalidTransition = "Недопустимый переход статуса"
	msgInternalError     = "Внутренняя ошибка сервера"
)

// Handler обработчик смены статуса бронирования
// PATCH /api/reservations/{id}/status (админ)
type Handler struct {
	service ReservationsService
	logger  Logger
}

// NewHandler создает обработчик смены статуса
func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type request struct {
	Status string `json:"status"`
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	res, err := h.service.UpdateStatus(r.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reservations.ErrInvalidTransition):
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("update_reservation_status: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewReservationView(res))
}
