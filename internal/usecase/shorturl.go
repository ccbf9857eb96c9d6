package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/vadimbarashkov/microservices/internal/entity"
)

var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for allocating short url")

type shortURLRepository interface {
	Save(ctx context.Context, originalURL string) (*entity.ShortURL, error)
	RetrieveByShortURL(ctx context.Context, shortURL int64) (*entity.ShortURL, error)
	List(ctx context.Context) ([]entity.ShortURL, error)
}

type urlChecker interface {
	Check(ctx context.Context, rawURL string) error
}

type shortURLCache interface {
	Get(ctx context.Context, shortURL int64) (string, error)
	Set(ctx context.Context, shortURL int64, originalURL string) error
}

type ShortURLUseCase struct {
	repo       shortURLRepository
	checker    urlChecker
	cache      shortURLCache
	maxRetries int
}

type ShortURLOption func(*ShortURLUseCase)

// WithCache enables a read-through cache for ResolveShortURL.
func WithCache(cache shortURLCache) ShortURLOption {
	return func(uc *ShortURLUseCase) {
		uc.cache = cache
	}
}

func NewShortURLUseCase(repo shortURLRepository, checker urlChecker, opts ...ShortURLOption) *ShortURLUseCase {
	uc := &ShortURLUseCase{
		repo:       repo,
		checker:    checker,
		maxRetries: 5,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// ShortenURL validates rawURL, checks that its host is reachable and stores it
// under the next sequential short url.
func (uc *ShortURLUseCase) ShortenURL(ctx context.Context, rawURL string) (*entity.ShortURL, error) {
	const op = "usecase.ShortURLUseCase.ShortenURL"

	if !isHTTPURL(rawURL) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	if err := uc.checker.Check(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("%s: url check failed: %w", op, err)
	}

	for i := 0; i < uc.maxRetries; i++ {
		u, err := uc.repo.Save(ctx, rawURL)
		if err != nil {
			if errors.Is(err, entity.ErrShortURLExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		return u, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

func (uc *ShortURLUseCase) ResolveShortURL(ctx context.Context, shortURL int64) (*entity.ShortURL, error) {
	const op = "usecase.ShortURLUseCase.ResolveShortURL"

	if uc.cache != nil {
		if originalURL, err := uc.cache.Get(ctx, shortURL); err == nil {
			return &entity.ShortURL{
				OriginalURL: originalURL,
				ShortURL:    shortURL,
			}, nil
		}
	}

	u, err := uc.repo.RetrieveByShortURL(ctx, shortURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short url: %w", op, err)
	}

	if uc.cache != nil {
		// Cache write errors are ignored.
		_ = uc.cache.Set(ctx, u.ShortURL, u.OriginalURL)
	}

	return u, nil
}

func (uc *ShortURLUseCase) ListShortURLs(ctx context.Context) ([]entity.ShortURL, error) {
	const op = "usecase.ShortURLUseCase.ListShortURLs"

	urls, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list short urls: %w", op, err)
	}

	return urls, nil
}

func isHTTPURL(rawURL string) bool {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
