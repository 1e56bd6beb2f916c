package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	uc "github.com/m04kA/BMC-HallBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidID     = "Некорректный идентификатор зала"
	msgInvalidDate   = "Некорректная дата, ожидается формат YYYY-MM-DD"
	msgHallNotFound  = "Зал не найден"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик получения свободных слотов
// GET /api/halls/{id}/slots?date=YYYY-MM-DD
type Handler struct {
	usecase UseCase
	logger  Logger
}

// NewHandler создает обработчик свободных слотов
func NewHandler(usecase UseCase, logger Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	out, err := h.usecase.Execute(r.Context(), &uc.In{HallID: hallID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, uc.ErrHallNotFound):
			handlers.RespondNotFound(w, msgHallNotFound)
		default:
			h.logger.Error("get_available_slots: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, newResponse(out))
}
