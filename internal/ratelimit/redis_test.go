package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisRejectsInvalidArgs(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	assert.Nil(t, NewRedis(nil, 1, 1))
	assert.Nil(t, NewRedis(client, 0, 1))
	assert.Nil(t, NewRedis(client, 1, 0))

	var l *RedisLimiter
	d, err := l.Check(context.Background(), "k", t0)
	assert.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisWindow(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, 2*time.Second, NewRedis(client, 50, 100).Window())
	assert.Equal(t, time.Second, NewRedis(client, 100, 10).Window(), "windows are at least a second")
}

func TestRedisEmptyKeyIsNotThrottled(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	d, err := NewRedis(client, 1, 1).Check(context.Background(), " ", t0)
	assert.NoError(t, err)
	assert.True(t, d.Allowed)
}
