package usecase

import (
	"fmt"
	"time"

	"github.com/vadimbarashkov/microservices/internal/entity"
	"github.com/vadimbarashkov/microservices/pkg/date"
)

type TimestampUseCase struct {
	now func() time.Time
}

func NewTimestampUseCase() *TimestampUseCase {
	return &TimestampUseCase{now: time.Now}
}

// Normalize turns an optional date or epoch-millisecond string into a Timestamp.
// An empty input yields the current instant.
func (uc *TimestampUseCase) Normalize(raw string) (entity.Timestamp, error) {
	const op = "usecase.TimestampUseCase.Normalize"

	if raw == "" {
		return entity.NewTimestamp(uc.now()), nil
	}

	t, err := date.Parse(raw)
	if err != nil {
		return entity.Timestamp{}, fmt.Errorf("%s: %w", op, entity.ErrInvalidDate)
	}

	return entity.NewTimestamp(t), nil
}
