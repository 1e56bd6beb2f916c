package export_reservations

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	"github.com/m04kA/BMC-HallBookingService/internal/service/reservations"
)

const (
	msgInvalidID     = "Некорректный идентификатор зала"
	msgInvalidDate   = "Некорректная дата, ожидается формат YYYY-MM-DD"
	msgInternalError = "Внутренняя ошибка сервера"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler обработчик выгрузки бронирований в Excel
// GET /api/halls/{id}/reservations/export (админ)
type Handler struct {
	service ReservationsService
	logger  Logger
}

// NewHandler создает обработчик выгрузки бронирований
func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает запрос
// В выгрузку попадают и отмененные бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	filter := domain.ReservationsFilter{
		HallID:          hallID,
		IncludeInactive: true,
	}

	query := r.URL.Query()
	if raw := query.Get("start_date"); raw != "" {
		date, err := handlers.ParseDate(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.StartDate = &date
	}
	if raw := query.Get("end_date"); raw != "" {
		date, err := handlers.ParseDate(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.EndDate = &date
	}

	data, err := h.service.ExportToExcel(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("export_reservations: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	fileName := fmt.Sprintf("reservations_%d_%s.xlsx", hallID, time.Now().Format(domain.DateFormat))
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
