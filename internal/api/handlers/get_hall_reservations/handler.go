package get_hall_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/reservations"
)

const (
	msgInvalidID     = "Некорректный идентификатор зала"
	msgInvalidFilter = "Некорректные параметры фильтрации"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик получения бронирований зала
// GET /api/halls/{id}/reservations (админ)
type Handler struct {
	service ReservationsService
	logger  Logger
}

// NewHandler создает обработчик бронирований зала
func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	filter, err := parseFilter(hallID, r.URL.Query())
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	list, err := h.service.ListByHall(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("get_hall_reservations: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response{Reservations: handlers.NewReservationViews(list)})
}
