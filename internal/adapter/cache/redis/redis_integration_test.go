//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vadimbarashkov/microservices/internal/entity"
)

func setupRedis(t testing.TB) string {
	t.Helper()

	ctx := context.Background()

	redisCont, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := redisCont.Terminate(ctx); err != nil {
			t.Fatalf("Failed to terminate redis container: %v", err)
		}
	})

	endpoint, err := redisCont.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("Failed to get redis container endpoint: %v", err)
	}

	return endpoint
}

func TestShortURLCache(t *testing.T) {
	addr := setupRedis(t)
	ctx := context.Background()

	client, err := New(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Close()
	})

	cache := NewShortURLCache(client, time.Minute)

	t.Run("miss", func(t *testing.T) {
		originalURL, err := cache.Get(ctx, 42)

		assert.ErrorIs(t, err, entity.ErrCacheMiss)
		assert.Empty(t, originalURL)
	})

	t.Run("hit", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, 1, "https://example.com"))

		originalURL, err := cache.Get(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "https://example.com", originalURL)
	})
}
