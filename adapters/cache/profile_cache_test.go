package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type cachedView struct {
	Name string `json:"name"`
}

func TestNilClientCacheIsBypassed(t *testing.T) {
	c := NewRedisProfileCache(nil, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, map[string]string{"name": "Ito"}))

	var out map[string]string
	_, hit, err := c.Get(ctx, &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)

	assert.NoError(t, c.Invalidate(ctx))
}

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping Redis integration test in short mode.")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisProfileCache_Generations(t *testing.T) {
	client := startRedis(t)
	c := NewRedisProfileCache(client, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	var out cachedView
	gen, hit, err := c.Get(ctx, &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, c.Set(ctx, gen, cachedView{Name: "Before"}))
	_, hit, err = c.Get(ctx, &out)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "Before", out.Name)

	require.NoError(t, c.Invalidate(ctx))
	_, hit, err = c.Get(ctx, &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisProfileCache_SetAfterInvalidateIsNotServed(t *testing.T) {
	client := startRedis(t)
	c := NewRedisProfileCache(client, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	var out cachedView
	staleGen, hit, err := c.Get(ctx, &out)
	require.NoError(t, err)
	require.False(t, hit)

	// A write lands while the reader is still composing.
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, staleGen, cachedView{Name: "Before"}))

	gen, hit, err := c.Get(ctx, &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, staleGen+1, gen)

	ttl, err := client.TTL(ctx, profileViewKey(staleGen)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
