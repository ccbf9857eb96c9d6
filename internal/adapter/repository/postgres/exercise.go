package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/microservices/internal/entity"
)

type exerciseDB struct {
	ID          int64     `db:"id"`
	UserID      string    `db:"user_id"`
	Description string    `db:"description"`
	Duration    float64   `db:"duration"`
	Date        time.Time `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
}

func (e *exerciseDB) toEntity() *entity.Exercise {
	return &entity.Exercise{
		ID:          e.ID,
		UserID:      e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

type ExerciseRepository struct {
	db *sqlx.DB
}

func NewExerciseRepository(db *sqlx.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Save(ctx context.Context, ex entity.Exercise) (*entity.Exercise, error) {
	const op = "adapter.repository.postgres.ExerciseRepository.Save"
	const query = `INSERT INTO exercises(user_id, description, duration, date)
		VALUES ($1, $2, $3, $4)
		RETURNING *`

	var e exerciseDB

	err := r.db.GetContext(ctx, &e, query, ex.UserID, ex.Description, ex.Duration, ex.Date)
	if err != nil {
		if isForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: failed to insert into exercises table: %w", op, err)
	}

	return e.toEntity(), nil
}

// ListByUser returns the user's exercises dated within [filter.From, filter.To] in insertion order,
// at most filter.Limit of them when it is positive.
func (r *ExerciseRepository) ListByUser(ctx context.Context, userID string, filter entity.LogFilter) ([]entity.Exercise, error) {
	const op = "adapter.repository.postgres.ExerciseRepository.ListByUser"
	const query = `SELECT * FROM exercises
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY id
		LIMIT $4`

	var limit sql.NullInt64
	if filter.Limit > 0 {
		limit = sql.NullInt64{Int64: int64(filter.Limit), Valid: true}
	}

	var rows []exerciseDB

	if err := r.db.SelectContext(ctx, &rows, query, userID, filter.From, filter.To, limit); err != nil {
		return nil, fmt.Errorf("%s: failed to select from exercises table: %w", op, err)
	}

	exercises := make([]entity.Exercise, 0, len(rows))
	for i := range rows {
		exercises = append(exercises, *rows[i].toEntity())
	}

	return exercises, nil
}
