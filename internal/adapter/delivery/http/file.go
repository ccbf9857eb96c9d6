package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/vadimbarashkov/microservices/internal/entity"
)

const uploadField = "upfile"

type fileResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

type fileHandler struct {
	maxSize   int64
	maxMemory int64
}

func newFileHandler(maxSize, maxMemory int64) *fileHandler {
	return &fileHandler{
		maxSize:   maxSize,
		maxMemory: maxMemory,
	}
}

// analyse reports the metadata of the uploaded file from its multipart header.
// The content itself is never inspected.
func (h *fileHandler) analyse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)

	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, fileTooLargeResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, missingFileResponse)
		return
	}
	defer r.MultipartForm.RemoveAll()

	f, header, err := r.FormFile(uploadField)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, missingFileResponse)
		return
	}
	f.Close()

	meta := entity.FileMetadata{
		Name: header.Filename,
		Type: header.Header.Get("Content-Type"),
		Size: header.Size,
	}

	render.JSON(w, r, fileResponse{
		Name: meta.Name,
		Type: meta.Type,
		Size: meta.Size,
	})
}
