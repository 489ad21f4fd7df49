package middleware

import (
	"context"
	"time"

	"github.com/go-arcade/ats/pkg/cache"
	"github.com/go-arcade/ats/pkg/log"
)

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter shares counters across instances. It fails open when redis errors.
type RedisLimiter struct {
	cache cache.ICache
}

func NewRedisLimiter(c cache.ICache) *RedisLimiter {
	return &RedisLimiter{cache: c}
}

func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	allowed, err := l.cache.Eval(ctx, rateLimitScript, []string{key}, ttl, limit).Int64()
	if err != nil {
		log.Warnw("rate limit check failed, allowing request", "key", key, "error", err)
		return true
	}
	return allowed == 1
}

// NewLimiter picks the shared redis limiter when c is redis backed, otherwise
// an in-process limiter.
func NewLimiter(c cache.ICache) Limiter {
	if rc, ok := c.(*cache.RedisCache); ok && rc != nil {
		return NewRedisLimiter(rc)
	}
	return NewRateLimiter()
}
