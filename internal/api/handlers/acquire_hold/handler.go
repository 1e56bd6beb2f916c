package acquire_hold

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	uc "github.com/m04kA/BMC-HallBookingService/internal/usecase/acquire_hold"
	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

const (
	msgInvalidBody     = "Некорректное тело запроса"
	msgInvalidDate     = "Некорректная дата, ожидается формат YYYY-MM-DD"
	msgHallNotFound    = "Зал не найден"
	msgSlotTaken       = "Слот недоступен, выберите другое время"
	msgHoldUnavailable = "Удержание слотов временно недоступно"
	msgInternalError   = "Внутренняя ошибка сервера"
)

// Handler обработчик удержания слота
// POST /api/holds
type Handler struct {
	usecase UseCase
	logger  Logger
}

// NewHandler создает обработчик удержания слота
func NewHandler(usecase UseCase, logger Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := handlers.ParseDate(req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	out, err := h.usecase.Execute(r.Context(), &uc.In{
		HallID:      req.HallID,
		CourtNumber: req.CourtNumber,
		Date:        date,
		StartTime:   types.TimeString(req.StartTime),
	})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrValidation), errors.Is(err, uc.ErrInvalidSlot):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, uc.ErrHallNotFound):
			handlers.RespondNotFound(w, msgHallNotFound)
		case errors.Is(err, uc.ErrSlotTaken):
			handlers.RespondConflict(w, msgSlotTaken)
		case errors.Is(err, uc.ErrHoldUnavailable):
			handlers.RespondServiceUnavailable(w, msgHoldUnavailable)
		default:
			h.logger.Error("acquire_hold: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, response{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
	})
}
