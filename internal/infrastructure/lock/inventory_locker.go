package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	appinv "github.com/wms/backend/internal/application/inventory"
	"go.uber.org/zap"
)

// retryInterval is the pause between two attempts while waiting for a lock
const retryInterval = 100 * time.Millisecond

// KeyFor returns the Redis key guarding the lifecycle of an inventory
func KeyFor(inventoryID int64) string {
	return fmt.Sprintf("inventory:lifecycle:%d", inventoryID)
}

// RedisInventoryLocker implements InventoryLocker with redislock
type RedisInventoryLocker struct {
	client *redislock.Client
	ttl    time.Duration
	wait   time.Duration
	logger *zap.Logger
}

// NewRedisInventoryLocker creates a locker. Locks expire after ttl; a busy
// lock is retried for up to wait before giving up.
func NewRedisInventoryLocker(client redislock.RedisClient, ttl, wait time.Duration, logger *zap.Logger) *RedisInventoryLocker {
	return &RedisInventoryLocker{
		client: redislock.New(client),
		ttl:    ttl,
		wait:   wait,
		logger: logger,
	}
}

// Lock obtains the inventory lock. A lock held elsewhere yields ErrInventoryBusy.
func (l *RedisInventoryLocker) Lock(ctx context.Context, inventoryID int64) (func(context.Context) error, error) {
	key := KeyFor(inventoryID)
	held, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{RetryStrategy: l.retryStrategy()})
	if errors.Is(err, redislock.ErrNotObtained) {
		l.logger.Warn("inventory lock busy", zap.Int64("inventory_id", inventoryID), zap.String("key", key))
		return nil, appinv.ErrInventoryBusy
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain inventory lock: %w", err)
	}

	return func(ctx context.Context) error {
		err := held.Release(ctx)
		if errors.Is(err, redislock.ErrLockNotHeld) {
			// expired before release; the row lock still guarded the write
			l.logger.Warn("inventory lock expired before release",
				zap.Int64("inventory_id", inventoryID),
				zap.Duration("ttl", l.ttl))
			return nil
		}
		return err
	}, nil
}

func (l *RedisInventoryLocker) retryStrategy() redislock.RetryStrategy {
	attempts := int(l.wait / retryInterval)
	if attempts <= 0 {
		return redislock.NoRetry()
	}
	return redislock.LimitRetry(redislock.LinearBackoff(retryInterval), attempts)
}

var _ appinv.InventoryLocker = (*RedisInventoryLocker)(nil)
