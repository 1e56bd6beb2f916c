package get_reservation

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

// Handler обработчик получения бронирования
// GET /api/reservations/{id} (админ)
type Handler struct {
	service ReservationsService
	logger  Logger
}

// NewHandler создает обработчик получения бронирования
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

	res, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("get_reservation: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewReservationView(res))
}
