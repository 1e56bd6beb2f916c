package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/reservations"
)

const (
	msgInvalidID     = "Некорректный идентификатор бронирования"
	msgNotFound      = "Бронирование не найдено"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик удаления бронирования
// DELETE /api/reservations/{id} (админ)
type Handler struct {
	service ReservationsService
	logger  Logger
}

// NewHandler создает обработчик удаления бронирования
func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("delete_reservation: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
