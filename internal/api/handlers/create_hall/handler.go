package create_hall

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/halls"
)

const (
	msgInvalidBody   = "Некорректное тело запроса"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик создания зала
// POST /api/halls (админ)
type Handler struct {
	service HallsService
	logger  Logger
}

// NewHandler создает обработчик создания зала
func NewHandler(service HallsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	hall, err := h.service.Create(r.Context(), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("create_hall: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, handlers.NewHallView(hall))
}
