//go:build integration

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panampa98/portfolio/pkg/cache"
	"github.com/panampa98/portfolio/pkg/redis"
)

func TestRedis(t *testing.T) {
	t.Parallel()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, redis.Config{URL: url, RetryAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewRedis[[]byte](client, cache.Bytes{}, "portfolio-test", time.Minute)

	_, err = c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, c.Set(ctx, "en", []byte(`{"labels":{}}`), 0))
	got, err := c.Get(ctx, "en")
	require.NoError(t, err)
	assert.JSONEq(t, `{"labels":{}}`, string(got))

	require.NoError(t, c.Delete(ctx, "en"))
	_, err = c.Get(ctx, "en")
	require.ErrorIs(t, err, cache.ErrNotFound)
}
