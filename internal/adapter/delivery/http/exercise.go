package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/microservices/internal/entity"
	"github.com/vadimbarashkov/microservices/internal/metrics"
	"github.com/vadimbarashkov/microservices/internal/usecase"
	"github.com/vadimbarashkov/microservices/pkg/date"
)

type exerciseUseCase interface {
	CreateUser(ctx context.Context, username string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	AddExercise(ctx context.Context, userID string, in usecase.ExerciseInput) (*entity.User, *entity.Exercise, error)
	GetLog(ctx context.Context, userID string, q usecase.LogQuery) (*entity.ExerciseLog, error)
}

type userRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
}

type userResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
	}
}

// exerciseRequest accepts duration as a JSON number or a numeric form value.
type exerciseRequest struct {
	Description string      `json:"description" form:"description" validate:"required"`
	Duration    json.Number `json:"duration" form:"duration" validate:"required,numeric"`
	Date        string      `json:"date" form:"date"`
}

type exerciseResponse struct {
	ID          string  `json:"_id"`
	Username    string  `json:"username"`
	Date        string  `json:"date"`
	Duration    float64 `json:"duration"`
	Description string  `json:"description"`
}

type logEntryResponse struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

type logResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []logEntryResponse `json:"log"`
}

func toLogResponse(l *entity.ExerciseLog) logResponse {
	entries := make([]logEntryResponse, 0, len(l.Log))
	for _, ex := range l.Log {
		entries = append(entries, logEntryResponse{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        date.Format(ex.Date),
		})
	}

	return logResponse{
		ID:       l.User.ID,
		Username: l.User.Username,
		Count:    l.Count(),
		Log:      entries,
	}
}

type exerciseHandler struct {
	useCase  exerciseUseCase
	validate *validator.Validate
	metrics  *metrics.Metrics
}

func newExerciseHandler(useCase exerciseUseCase, validate *validator.Validate, m *metrics.Metrics) *exerciseHandler {
	return &exerciseHandler{
		useCase:  useCase,
		validate: validate,
		metrics:  m,
	}
}

func (h *exerciseHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest

	if err := decodeRequest(r, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return
	}

	user, err := h.useCase.CreateUser(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, entity.ErrUsernameTaken) {
			render.PlainText(w, r, usernameTakenText)
			return
		}

		respondServerError(w, r, err)
		return
	}

	h.metrics.UserCreated()

	render.JSON(w, r, toUserResponse(user))
}

func (h *exerciseHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.useCase.ListUsers(r.Context())
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}

	render.JSON(w, r, resp)
}

func (h *exerciseHandler) addExercise(w http.ResponseWriter, r *http.Request) {
	var req exerciseRequest

	if err := decodeRequest(r, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return
	}

	duration, err := req.Duration.Float64()
	if err != nil || duration <= 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, fieldErrorResponse("duration", "gt"))
		return
	}

	user, ex, err := h.useCase.AddExercise(r.Context(), chi.URLParam(r, "id"), usecase.ExerciseInput{
		Description: req.Description,
		Duration:    duration,
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUserNotFound):
			render.PlainText(w, r, unknownUserIDText)
		case errors.Is(err, entity.ErrInvalidDate):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, fieldErrorResponse("date", "date"))
		default:
			respondServerError(w, r, err)
		}
		return
	}

	h.metrics.ExerciseLogged()

	render.JSON(w, r, exerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Date:        date.Format(ex.Date),
		Duration:    ex.Duration,
		Description: ex.Description,
	})
}

func (h *exerciseHandler) getLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	log, err := h.useCase.GetLog(r.Context(), chi.URLParam(r, "id"), usecase.LogQuery{
		From:  query.Get("from"),
		To:    query.Get("to"),
		Limit: query.Get("limit"),
	})
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			render.PlainText(w, r, unknownUserIDText)
			return
		}

		respondServerError(w, r, err)
		return
	}

	render.JSON(w, r, toLogResponse(log))
}
