package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/microservices/internal/entity"
	"github.com/vadimbarashkov/microservices/internal/metrics"
)

type shortURLUseCase interface {
	ShortenURL(ctx context.Context, rawURL string) (*entity.ShortURL, error)
	ResolveShortURL(ctx context.Context, shortURL int64) (*entity.ShortURL, error)
	ListShortURLs(ctx context.Context) ([]entity.ShortURL, error)
}

type shortURLRequest struct {
	URL string `json:"url" form:"url" validate:"required,url"`
}

type shortURLResponse struct {
	OriginalURL string `json:"original_url"`
	ShortURL    int64  `json:"short_url"`
}

func toShortURLResponse(u *entity.ShortURL) shortURLResponse {
	return shortURLResponse{
		OriginalURL: u.OriginalURL,
		ShortURL:    u.ShortURL,
	}
}

type shortURLHandler struct {
	useCase  shortURLUseCase
	validate *validator.Validate
	metrics  *metrics.Metrics
}

func newShortURLHandler(useCase shortURLUseCase, validate *validator.Validate, m *metrics.Metrics) *shortURLHandler {
	return &shortURLHandler{
		useCase:  useCase,
		validate: validate,
		metrics:  m,
	}
}

func (h *shortURLHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req shortURLRequest

	if err := decodeRequest(r, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.JSON(w, r, invalidURLResponse)
		return
	}

	u, err := h.useCase.ShortenURL(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidURL) || errors.Is(err, entity.ErrUnreachableURL) {
			render.JSON(w, r, invalidURLResponse)
			return
		}

		respondServerError(w, r, err)
		return
	}

	h.metrics.ShortURLCreated()

	render.JSON(w, r, toShortURLResponse(u))
}

func (h *shortURLHandler) resolveShortURL(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.ParseInt(chi.URLParam(r, "code"), 10, 64)
	if err != nil {
		render.JSON(w, r, invalidShortURLResponse)
		return
	}

	u, err := h.useCase.ResolveShortURL(r.Context(), code)
	if err != nil {
		if errors.Is(err, entity.ErrShortURLNotFound) {
			render.JSON(w, r, invalidShortURLResponse)
			return
		}

		respondServerError(w, r, err)
		return
	}

	h.metrics.Redirected()

	http.Redirect(w, r, u.OriginalURL, http.StatusFound)
}

func (h *shortURLHandler) listShortURLs(w http.ResponseWriter, r *http.Request) {
	urls, err := h.useCase.ListShortURLs(r.Context())
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	resp := make([]shortURLResponse, 0, len(urls))
	for i := range urls {
		resp = append(resp, toShortURLResponse(&urls[i]))
	}

	render.JSON(w, r, resp)
}
