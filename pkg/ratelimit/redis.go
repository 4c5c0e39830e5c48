package ratelimit

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter keeps the window counters in Redis so the limit holds across
// instances. Same fixed-window semantics: INCR per request, TTL set when the
// key is first created, counter keeps growing past the limit.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisLimiter(addr string) *RedisLimiter {
	return &RedisLimiter{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		limit:  Limit,
		window: Window,
	}
}

func (l *RedisLimiter) IsRateLimited(ip string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := "ratelimit:lead:" + ip

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		// Fail open: a broken counter should not block real submissions.
		log.Printf("Rate limit redis error: %v", err)
		return false
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			log.Printf("Rate limit expire error: %v", err)
		}
	}

	return count > l.limit
}
