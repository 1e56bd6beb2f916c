package delete_media

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
)

const (
	msgInvalidObject = "Некорректное имя объекта"
	msgInternalError = "Не удалось удалить файл"
)

// Handler обработчик удаления изображений
// DELETE /api/media/{object} (админ)
type Handler struct {
	store  MediaStore
	logger Logger
}

// NewHandler создает обработчик удаления изображений
func NewHandler(store MediaStore, logger Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	object := mux.Vars(r)["object"]
	if object == "" {
		handlers.RespondBadRequest(w, msgInvalidObject)
		return
	}

	if err := h.store.Delete(r.Context(), object); err != nil {
		h.logger.Error("delete_media: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	h.logger.Info("delete_media: deleted %s", object)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
