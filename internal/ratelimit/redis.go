package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "roident:rl:"

// RedisLimiter counts requests per key in fixed windows stored in Redis so
// that every instance behind a load balancer shares one budget. A window
// lasts as long as the token bucket takes to refill from empty, and admits
// burst requests.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedis returns nil when client is nil or rps or burst is not positive.
func NewRedis(client *redis.Client, rps float64, burst int) *RedisLimiter {
	if client == nil || rps <= 0 || burst <= 0 {
		return nil
	}
	window := time.Duration(float64(burst) / rps * float64(time.Second))
	if window < time.Second {
		window = time.Second
	}
	return &RedisLimiter{client: client, limit: burst, window: window}
}

// Window is the length of one counting window.
func (l *RedisLimiter) Window() time.Duration {
	return l.window
}

// Check implements Checker.
func (l *RedisLimiter) Check(ctx context.Context, key string, now time.Time) (Decision, error) {
	if l == nil {
		return Decision{Allowed: true}, nil
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit}, nil
	}

	start := now.Truncate(l.window)
	redisKey := fmt.Sprintf("%s%s:%d", redisKeyPrefix, key, start.UnixMilli())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.PExpire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("ratelimit: redis window update: %w", err)
	}

	count := int(incr.Val())
	d := Decision{
		Limit:     l.limit,
		Remaining: max(l.limit-count, 0),
	}
	if count <= l.limit {
		d.Allowed = true
	} else {
		d.RetryAfter = start.Add(l.window).Sub(now)
	}
	return d, nil
}
