package list_posts

import (
	"errors"
	"net/http"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	"github.com/m04kA/BMC-HallBookingService/internal/service/posts"
)

const msgInternalError = "Внутренняя ошибка сервера"

// Handler обработчик получения списка записей блога
// GET /api/posts
type Handler struct {
	service PostsService
	logger  Logger

	// adminMode открывает доступ к черновикам и архиву
	adminMode bool
}

// NewHandler создает обработчик списка записей
// Публичный вариант видит только опубликованные записи
func NewHandler(service PostsService, logger Logger, adminMode bool) *Handler {
	return &Handler{service: service, logger: logger, adminMode: adminMode}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.PostsFilter{}

	if raw := query.Get("category"); raw != "" {
		category := domain.PostCategory(raw)
		filter.Category = &category
	}
	if raw := query.Get("tag"); raw != "" {
		tag := raw
		filter.Tag = &tag
	}

	if h.adminMode {
		if raw := query.Get("status"); raw != "" {
			status := domain.PostStatus(raw)
			filter.Status = &status
		}
	} else {
		published := domain.PostStatusPublished
		filter.Status = &published
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, posts.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("list_posts: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response{Posts: handlers.NewPostViews(list)})
}

type response struct {
	Posts []handlers.PostView `json:"posts"`
}
