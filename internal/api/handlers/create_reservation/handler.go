package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	uc "github.com/m04kA/BMC-HallBookingService/internal/usecase/create_reservation"
	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

const (
	msgInvalidBody   = "Некорректное тело запроса"
	msgInvalidDate   = "Некорректная дата, ожидается формат YYYY-MM-DD"
	msgHallNotFound  = "Зал не найден"
	msgNotBookable   = "Зал временно не принимает бронирования"
	msgSlotInPast    = "Выбранное время уже недоступно для бронирования"
	msgSlotTaken     = "Слот уже занят, выберите другое время"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик создания бронирования
// POST /api/reservations
type Handler struct {
	usecase UseCase
	logger  Logger
}

// NewHandler создает обработчик создания бронирования
func NewHandler(usecase UseCase, logger Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

// Handle обрабатывает запрос
// Конфликт занятости возвращает 409: клиент возвращается к выбору слота
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := handlers.ParseDate(req.BookingDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	out, err := h.usecase.Execute(r.Context(), &uc.In{
		HallID:        req.HallID,
		CourtNumber:   req.CourtNumber,
		BookingDate:   date,
		StartTime:     types.TimeString(req.StartTime),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
		HoldToken:     req.HoldToken,
	})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrValidation), errors.Is(err, uc.ErrInvalidSlot):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, uc.ErrSlotInPast):
			handlers.RespondBadRequest(w, msgSlotInPast)
		case errors.Is(err, uc.ErrHallNotFound):
			handlers.RespondNotFound(w, msgHallNotFound)
		case errors.Is(err, uc.ErrHallNotBookable):
			handlers.RespondConflict(w, msgNotBookable)
		case errors.Is(err, uc.ErrSlotTaken):
			handlers.RespondConflict(w, msgSlotTaken)
		default:
			h.logger.Error("create_reservation: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, handlers.NewReservationView(out.Reservation))
}
