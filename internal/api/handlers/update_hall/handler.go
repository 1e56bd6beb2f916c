package update_hall

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/halls"
)

const (
	msgInvalidID     = "Некорректный идентификатор зала"
	msgInvalidBody   = "Некорректное тело запроса"
	msgHallNotFound  = "Зал не найден"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик обновления зала
// PUT /api/halls/{id} (админ)
type Handler struct {
	service HallsService
	logger  Logger
}

// NewHandler создает обработчик обновления зала
func NewHandler(service HallsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
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

	hall, err := h.service.Update(r.Context(), req.toDomain(id))
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, halls.ErrHallNotFound):
			handlers.RespondNotFound(w, msgHallNotFound)
		default:
			h.logger.Error("update_hall: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewHallView(hall))
}
