// Package throttle counts failed logins in Redis.
package throttle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront_backend/internal/feature/account/usecase"
)

const (
	defaultPrefix = "login_fail"
	defaultMax    = 5
	defaultWindow = 15 * time.Minute
)

// LoginThrottleRedis implements usecase.LoginThrottle with one counter per key.
// The counter expires window after the first failure.
type LoginThrottleRedis struct {
	client *redis.Client
	prefix string
	max    int64
	window time.Duration
}

var _ usecase.LoginThrottle = (*LoginThrottleRedis)(nil)

// NewLoginThrottleRedis creates a LoginThrottleRedis. Zero values select the defaults.
func NewLoginThrottleRedis(client *redis.Client, prefix string, max int, window time.Duration) *LoginThrottleRedis {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if max <= 0 {
		max = defaultMax
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottleRedis{client: client, prefix: prefix, max: int64(max), window: window}
}

func (t *LoginThrottleRedis) key(k string) string {
	return fmt.Sprintf("%s:%s", t.prefix, k)
}

// Blocked reports whether k has reached the failure limit.
func (t *LoginThrottleRedis) Blocked(ctx context.Context, k string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(k)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return n >= t.max, nil
}

// RecordFailure increments the counter and starts the window if the key has none.
// Both commands run in one MULTI/EXEC so a counter never outlives its window.
func (t *LoginThrottleRedis) RecordFailure(ctx context.Context, k string) error {
	key := t.key(k)
	_, err := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, t.window)
		return nil
	})
	return err
}

// Reset clears the counter.
func (t *LoginThrottleRedis) Reset(ctx context.Context, k string) error {
	return t.client.Del(ctx, t.key(k)).Err()
}
