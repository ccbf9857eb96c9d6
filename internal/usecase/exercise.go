package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vadimbarashkov/microservices/internal/entity"
	"github.com/vadimbarashkov/microservices/pkg/date"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	userIDAlphabet = "0123456789abcdef"
	userIDLength   = 24
)

type userRepository interface {
	Save(ctx context.Context, id, username string) (*entity.User, error)
	RetrieveByID(ctx context.Context, id string) (*entity.User, error)
	RetrieveByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}

type exerciseRepository interface {
	Save(ctx context.Context, ex entity.Exercise) (*entity.Exercise, error)
	ListByUser(ctx context.Context, userID string, filter entity.LogFilter) ([]entity.Exercise, error)
}

// ExerciseInput is an exercise to append to a user's log. An empty Date means today.
type ExerciseInput struct {
	Description string
	Duration    float64
	Date        string
}

// LogQuery holds the raw, optional bounds of a log request.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

type ExerciseUseCase struct {
	userRepo     userRepository
	exerciseRepo exerciseRepository
	now          func() time.Time
}

func NewExerciseUseCase(userRepo userRepository, exerciseRepo exerciseRepository) *ExerciseUseCase {
	return &ExerciseUseCase{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          time.Now,
	}
}

// CreateUser registers username unless it is already taken.
func (uc *ExerciseUseCase) CreateUser(ctx context.Context, username string) (*entity.User, error) {
	const op = "usecase.ExerciseUseCase.CreateUser"

	_, err := uc.userRepo.RetrieveByUsername(ctx, username)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUsernameTaken)
	}
	if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: failed to check username: %w", op, err)
	}

	id, err := gonanoid.Generate(userIDAlphabet, userIDLength)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to generate user id: %w", op, err)
	}

	user, err := uc.userRepo.Save(ctx, id, username)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create user: %w", op, err)
	}

	return user, nil
}

func (uc *ExerciseUseCase) ListUsers(ctx context.Context) ([]entity.User, error) {
	const op = "usecase.ExerciseUseCase.ListUsers"

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list users: %w", op, err)
	}

	return users, nil
}

// AddExercise appends an exercise to the log of the user with userID.
func (uc *ExerciseUseCase) AddExercise(ctx context.Context, userID string, in ExerciseInput) (*entity.User, *entity.Exercise, error) {
	const op = "usecase.ExerciseUseCase.AddExercise"

	user, err := uc.userRepo.RetrieveByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	day := date.Day(uc.now())
	if in.Date != "" {
		t, err := date.Parse(in.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidDate)
		}
		day = date.Day(t)
	}

	ex, err := uc.exerciseRepo.Save(ctx, entity.Exercise{
		UserID:      user.ID,
		Description: in.Description,
		Duration:    in.Duration,
		Date:        day,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to save exercise: %w", op, err)
	}

	return user, ex, nil
}

// GetLog returns the exercises of the user with userID dated within the query bounds.
// Missing or unparseable bounds fall back to the epoch and today; a missing or
// non-positive limit returns every matching entry.
func (uc *ExerciseUseCase) GetLog(ctx context.Context, userID string, q LogQuery) (*entity.ExerciseLog, error) {
	const op = "usecase.ExerciseUseCase.GetLog"

	user, err := uc.userRepo.RetrieveByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	exercises, err := uc.exerciseRepo.ListByUser(ctx, user.ID, uc.logFilter(q))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list exercises: %w", op, err)
	}

	return &entity.ExerciseLog{
		User: *user,
		Log:  exercises,
	}, nil
}

func (uc *ExerciseUseCase) logFilter(q LogQuery) entity.LogFilter {
	filter := entity.LogFilter{
		From: time.Unix(0, 0).UTC(),
		To:   date.Day(uc.now()),
	}

	if t, err := date.Parse(q.From); err == nil {
		filter.From = date.Day(t)
	}
	if t, err := date.Parse(q.To); err == nil {
		filter.To = date.Day(t)
	}
	if n, err := strconv.Atoi(q.Limit); err == nil && n > 0 {
		filter.Limit = n
	}

	return filter
}
