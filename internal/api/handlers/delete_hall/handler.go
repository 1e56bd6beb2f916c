package delete_hall

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/halls"
)

const (
	msgInvalidID     = "Некорректный идентификатор зала"
	msgHallNotFound  = "Зал не найден"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик удаления зала
// DELETE /api/halls/{id} (админ)
type Handler struct {
	service HallsService
	logger  Logger
}

// NewHandler создает обработчик удаления зала
func NewHandler(service HallsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает запрос
// По умолчанию зал деактивируется, история бронирований сохраняется.
// Физическое удаление - только с явным hard=true.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if r.URL.Query().Get("hard") == "true" {
		err = h.service.Delete(r.Context(), id)
	} else {
		err = h.service.Deactivate(r.Context(), id)
	}

	if err != nil {
		switch {
		case errors.Is(err, halls.ErrHallNotFound):
			handlers.RespondNotFound(w, msgHallNotFound)
		default:
			h.logger.Error("delete_hall: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
