// Package redis caches resolved short URLs in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vadimbarashkov/microservices/internal/entity"
)

const keyPrefix = "shorturl:"

// New connects to Redis and verifies the connection.
func New(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	const op = "adapter.cache.redis.New"

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%s: failed to ping redis: %w", op, err)
	}

	return client, nil
}

type ShortURLCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewShortURLCache(client redis.Cmdable, ttl time.Duration) *ShortURLCache {
	return &ShortURLCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the original URL cached for shortURL or entity.ErrCacheMiss.
func (c *ShortURLCache) Get(ctx context.Context, shortURL int64) (string, error) {
	const op = "adapter.cache.redis.ShortURLCache.Get"

	originalURL, err := c.client.Get(ctx, key(shortURL)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%s: %w", op, entity.ErrCacheMiss)
		}

		return "", fmt.Errorf("%s: failed to get key: %w", op, err)
	}

	return originalURL, nil
}

func (c *ShortURLCache) Set(ctx context.Context, shortURL int64, originalURL string) error {
	const op = "adapter.cache.redis.ShortURLCache.Set"

	if err := c.client.Set(ctx, key(shortURL), originalURL, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: failed to set key: %w", op, err)
	}

	return nil
}

func key(shortURL int64) string {
	return keyPrefix + strconv.FormatInt(shortURL, 10)
}
