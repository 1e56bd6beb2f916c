package list_halls

import (
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

const msgInternalError = "Внутренняя ошибка сервера"

// Handler обработчик получения списка залов
// GET /api/halls
type Handler struct {
	service HallsService
	logger  Logger

	// adminMode открывает доступ к неактивным залам
	adminMode bool
}

// NewHandler создает обработчик списка залов
// Публичный вариант видит только активные залы
func NewHandler(service HallsService, logger Logger, adminMode bool) *Handler {
	return &Handler{service: service, logger: logger, adminMode: adminMode}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.HallsFilter{OnlyActive: true}
	if h.adminMode && r.URL.Query().Get("include_inactive") == "true" {
		filter.OnlyActive = false
	}

	halls, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("list_halls: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response{Halls: handlers.NewHallViews(halls)})
}

type response struct {
	Halls []handlers.HallView `json:"halls"`
}
