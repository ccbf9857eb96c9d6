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

type shortURLDB struct {
	ID          int64     `db:"id"`
	OriginalURL string    `db:"original_url"`
	ShortURL    int64     `db:"short_url"`
	CreatedAt   time.Time `db:"created_at"`
}

func (u *shortURLDB) toEntity() *entity.ShortURL {
	return &entity.ShortURL{
		ID:          u.ID,
		OriginalURL: u.OriginalURL,
		ShortURL:    u.ShortURL,
		CreatedAt:   u.CreatedAt,
	}
}

type ShortURLRepository struct {
	db *sqlx.DB
}

func NewShortURLRepository(db *sqlx.DB) *ShortURLRepository {
	return &ShortURLRepository{db: db}
}

// Save stores originalURL under the next free code, one above the current maximum.
// Concurrent saves may compute the same code; the loser gets entity.ErrShortURLExists.
func (r *ShortURLRepository) Save(ctx context.Context, originalURL string) (*entity.ShortURL, error) {
	const op = "adapter.repository.postgres.ShortURLRepository.Save"
	const query = `INSERT INTO short_urls(original_url, short_url)
		SELECT $1, COALESCE(MAX(short_url), 0) + 1 FROM short_urls
		RETURNING *`

	var u shortURLDB

	if err := r.db.GetContext(ctx, &u, query, originalURL); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrShortURLExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into short_urls table: %w", op, err)
	}

	return u.toEntity(), nil
}

func (r *ShortURLRepository) RetrieveByShortURL(ctx context.Context, shortURL int64) (*entity.ShortURL, error) {
	const op = "adapter.repository.postgres.ShortURLRepository.RetrieveByShortURL"
	const query = `SELECT * FROM short_urls WHERE short_url = $1`

	var u shortURLDB

	if err := r.db.GetContext(ctx, &u, query, shortURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrShortURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from short_urls table: %w", op, err)
	}

	return u.toEntity(), nil
}

func (r *ShortURLRepository) List(ctx context.Context) ([]entity.ShortURL, error) {
	const op = "adapter.repository.postgres.ShortURLRepository.List"
	const query = `SELECT * FROM short_urls ORDER BY short_url`

	var rows []shortURLDB

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: failed to select from short_urls table: %w", op, err)
	}

	urls := make([]entity.ShortURL, 0, len(rows))
	for i := range rows {
		urls = append(urls, *rows[i].toEntity())
	}

	return urls, nil
}
