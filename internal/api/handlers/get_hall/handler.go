package get_hall

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

// Handler обработчик получения зала
// GET /api/halls/{id}
type Handler struct {
	service HallsService
	logger  Logger

	// adminMode открывает доступ к неактивным залам
	adminMode bool
}

// NewHandler создает обработчик получения зала
// Публичный вариант считает неактивный зал несуществующим
func NewHandler(service HallsService, logger Logger, adminMode bool) *Handler {
	return &Handler{service: service, logger: logger, adminMode: adminMode}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	hall, err := h.service.GetByID(r.Context(), id, !h.adminMode)
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrHallNotFound):
			handlers.RespondNotFound(w, msgHallNotFound)
		default:
			h.logger.Error("get_hall: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewHallView(hall))
}
