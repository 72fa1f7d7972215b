package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		rdb, err := NewRedisClient(context.Background(), Config{})

		assert.ErrorIs(t, err, ErrNotConfigured)
		assert.Nil(t, rdb)
	})

	t.Run("connects to a live server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		rdb, err := NewRedisClient(context.Background(), Config{Host: mr.Host(), Port: mr.Port()})

		require.NoError(t, err)
		t.Cleanup(func() { _ = rdb.Close() })
		assert.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
	})

	t.Run("unreachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		host, port := mr.Host(), mr.Port()
		mr.Close()

		_, err := NewRedisClient(context.Background(), Config{Host: host, Port: port})

		assert.Error(t, err)
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, Config{Host: "cache", Port: "6379", Password: "pw", DB: 2}, cfg)
}
