package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix     = "mockdata:lock:"
	lockTTL           = 30 * time.Second
	lockRetryInterval = 50 * time.Millisecond
)

// releaseScript deletes the lock only if it is still held by the caller's
// token, so an expired-and-reacquired lock is never released by the old owner.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker provides advisory locks shared across service instances.
type RedisLocker struct {
	client *redis.Client
}

// NewRedisLocker creates a Locker backed by the given Redis client.
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

// Lock acquires the named lock with SET NX, retrying until the context is
// done. The lock carries a TTL so a crashed holder cannot block forever.
func (l *RedisLocker) Lock(ctx context.Context, name string) (func(), error) {
	key := lockKeyPrefix + name
	token := newLockToken()

	for {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", name, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
	}
	return release, nil
}

func newLockToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

var _ Locker = (*RedisLocker)(nil)
