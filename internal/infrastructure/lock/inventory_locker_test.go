package lock

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	appinv "github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/config"
	"github.com/wms/backend/tests/testutil"
	"go.uber.org/zap/zaptest"
)

// startRedis runs a throwaway Redis container
func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := NewRedisClient(&config.RedisConfig{Host: host, Port: port.Int()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, "inventory:lifecycle:42", KeyFor(42))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := NewRedisClient(&config.RedisConfig{Host: "127.0.0.1", Port: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestRedisInventoryLocker(t *testing.T) {
	client := startRedis(t)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	t.Run("second holder is rejected until release", func(t *testing.T) {
		locker := NewRedisInventoryLocker(client, 5*time.Second, 0, zaptest.NewLogger(t))

		release, err := locker.Lock(ctx, 1)
		require.NoError(t, err)

		_, err = locker.Lock(ctx, 1)
		assert.ErrorIs(t, err, appinv.ErrInventoryBusy)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		other, err := locker.Lock(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, other(ctx))

		require.NoError(t, release(ctx))
		again, err := locker.Lock(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, again(ctx))
	})

	t.Run("waits for a short-lived holder", func(t *testing.T) {
		holder := NewRedisInventoryLocker(client, 200*time.Millisecond, 0, zaptest.NewLogger(t))
		waiter := NewRedisInventoryLocker(client, time.Second, time.Second, zaptest.NewLogger(t))

		_, err := holder.Lock(ctx, 3)
		require.NoError(t, err)

		release, err := waiter.Lock(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, release(ctx))
	})

	t.Run("release after expiry is not an error", func(t *testing.T) {
		locker := NewRedisInventoryLocker(client, 100*time.Millisecond, 0, zaptest.NewLogger(t))

		release, err := locker.Lock(ctx, 4)
		require.NoError(t, err)
		time.Sleep(250 * time.Millisecond)
		assert.NoError(t, release(ctx))
	})
}
