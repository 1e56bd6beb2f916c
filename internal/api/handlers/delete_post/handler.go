package delete_post

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/posts"
)

const (
	msgInvalidID     = "Некорректный идентификатор записи"
	msgNotFound      = "Запись не найдена"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик удаления записи блога
// DELETE /api/posts/{id} (админ)
type Handler struct {
	service PostsService
	logger  Logger
}

// NewHandler создает обработчик удаления записи
func NewHandler(service PostsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, posts.ErrPostNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("delete_post: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
