package upload_media

import (
	"net/http"
	"strings"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
)

const (
	msgInvalidForm   = "Некорректная multipart форма, ожидается поле file"
	msgInvalidType   = "Недопустимый тип файла, ожидается изображение"
	msgInternalError = "Не удалось загрузить файл"
)

// максимальный размер загружаемого изображения
const maxUploadBytes = 10 << 20

// Handler обработчик загрузки изображений
// POST /api/media (админ)
type Handler struct {
	store  MediaStore
	logger Logger
}

// NewHandler создает обработчик загрузки изображений
func NewHandler(store MediaStore, logger Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

type response struct {
	URL string `json:"url"`
}

// Handle обрабатывает запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		handlers.RespondBadRequest(w, msgInvalidType)
		return
	}

	url, err := h.store.Upload(r.Context(), header.Filename, file, header.Size, contentType)
	if err != nil {
		h.logger.Error("upload_media: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	h.logger.Info("upload_media: uploaded %s (%d bytes)", header.Filename, header.Size)
	handlers.RespondJSON(w, http.StatusCreated, response{URL: url})
}
