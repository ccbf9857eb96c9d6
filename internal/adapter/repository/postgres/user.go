package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/microservices/internal/entity"
)

type userDB struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

func (u *userDB) toEntity() *entity.User {
	return &entity.User{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, id, username string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.Save"
	const query = `INSERT INTO users(id, username) VALUES ($1, $2) RETURNING *`

	var u userDB

	if err := r.db.GetContext(ctx, &u, query, id, username); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUsernameTaken)
		}

		return nil, fmt.Errorf("%s: failed to insert into users table: %w", op, err)
	}

	return u.toEntity(), nil
}

func (r *UserRepository) RetrieveByID(ctx context.Context, id string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.RetrieveByID"
	const query = `SELECT * FROM users WHERE id = $1`

	return r.retrieve(ctx, op, query, id)
}

func (r *UserRepository) RetrieveByUsername(ctx context.Context, username string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.RetrieveByUsername"
	const query = `SELECT * FROM users WHERE username = $1`

	return r.retrieve(ctx, op, query, username)
}

func (r *UserRepository) retrieve(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	var u userDB

	if err := r.db.GetContext(ctx, &u, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from users table: %w", op, err)
	}

	return u.toEntity(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.List"
	const query = `SELECT * FROM users ORDER BY created_at, id`

	var rows []userDB

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: failed to select from users table: %w", op, err)
	}

	users := make([]entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].toEntity())
	}

	return users, nil
}
