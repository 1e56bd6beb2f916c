package get_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/service/posts"
)

const (
	msgInvalidSlug   = "Некорректный slug записи"
	msgNotFound      = "Запись не найдена"
	msgInternalError = "Внутренняя ошибка сервера"
)

// Handler обработчик получения записи блога по slug
// GET /api/posts/{slug}
type Handler struct {
	service PostsService
	logger  Logger

	// adminMode открывает доступ к черновикам и архиву
	adminMode bool
}

// NewHandler создает обработчик получения записи
func NewHandler(service PostsService, logger Logger, adminMode bool) *Handler {
	return &Handler{service: service, logger: logger, adminMode: adminMode}
}

// Handle обрабатывает запрос
// Публичный просмотр увеличивает счетчик просмотров записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		handlers.RespondBadRequest(w, msgInvalidSlug)
		return
	}

	post, err := h.service.GetBySlug(r.Context(), slug, !h.adminMode)
	if err != nil {
		switch {
		case errors.Is(err, posts.ErrPostNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("get_post: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewPostView(post))
}
