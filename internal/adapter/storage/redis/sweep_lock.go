package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// unlockScript deletes the key only while it still holds our token, so an
// expired lock taken over by another instance is never released by us.
var unlockScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ErrLockNotHeld is returned by Unlock when the token no longer owns the lock.
var ErrLockNotHeld = errors.New("lock not held")

// SweepLock implements ports.SweepLock using Redis SET NX PX.
type SweepLock struct {
	client *goredis.Client
	prefix string
}

// NewSweepLock creates a new Redis-backed lock.
func NewSweepLock(client *goredis.Client) *SweepLock {
	return &SweepLock{
		client: client,
		prefix: "lock:",
	}
}

// TryLock attempts to take the named lock for ttl. It returns the owner
// token and true on success, or false when another holder has it.
func (l *SweepLock) TryLock(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	token, err := newLockToken()
	if err != nil {
		return "", false, err
	}

	result, err := l.client.SetArgs(ctx, l.prefix+name, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis lock acquire: %w", err)
	}
	return token, result == "OK", nil
}

// Unlock releases the lock if token still owns it.
func (l *SweepLock) Unlock(ctx context.Context, name, token string) error {
	n, err := unlockScript.Run(ctx, l.client, []string{l.prefix + name}, token).Int64()
	if err != nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	return nil
}

func newLockToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
