package update_post

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/posts"
)

const (
	msgInvalidID     = "Некорректный идентификатор записи"
	msgInvalidBody   = "Некорректное тело запроса"
	msgNotFound      = "Запись не найдена"
	msgSlugTaken     = "Запись с таким slug уже существует"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик обновления записи блога
// PUT /api/posts/{id} (админ)
type Handler struct {
	service PostsService
	logger  Logger
}

// NewHandler создает обработчик обновления записи
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

	var req request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	post, err := h.service.Update(r.Context(), req.toDomain(id))
	if err != nil {
		switch {
		case errors.Is(err, posts.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, posts.ErrPostNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, posts.ErrSlugTaken):
			handlers.RespondConflict(w, msgSlugTaken)
		default:
			h.logger.Error("update_post: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewPostView(post))
}
