package create_post

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/posts"
)

const (
	msgInvalidBody   = "Некорректное тело запроса"
	msgSlugTaken     = "Запись с таким slug уже существует"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик создания записи блога
// POST /api/posts (админ)
type Handler struct {
	service PostsService
	logger  Logger
}

// NewHandler создает обработчик создания записи
func NewHandler(service PostsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	post, err := h.service.Create(r.Context(), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, posts.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, posts.ErrSlugTaken):
			handlers.RespondConflict(w, msgSlugTaken)
		default:
			h.logger.Error("create_post: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, handlers.NewPostView(post))
}
