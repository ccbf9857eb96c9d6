package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/vadimbarashkov/microservices/internal/entity"
)

type timestampUseCase interface {
	Normalize(raw string) (entity.Timestamp, error)
}

type timestampResponse struct {
	Unix int64  `json:"unix"`
	UTC  string `json:"utc"`
}

type timestampHandler struct {
	useCase timestampUseCase
}

func newTimestampHandler(useCase timestampUseCase) *timestampHandler {
	return &timestampHandler{useCase: useCase}
}

func (h *timestampHandler) normalize(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "date")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}

	ts, err := h.useCase.Normalize(raw)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidDate) {
			render.JSON(w, r, invalidDateResponse)
			return
		}

		respondServerError(w, r, err)
		return
	}

	render.JSON(w, r, timestampResponse{
		Unix: ts.Unix,
		UTC:  ts.UTC,
	})
}
