package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/go-arcade/ats/pkg/http"
	"github.com/gofiber/fiber/v2"
)

// Limiter is a fixed window counter keyed by caller.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
	now     func() time.Time
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{buckets: make(map[string]*rateBucket), now: time.Now}
}

func (r *RateLimiter) Allow(key string, limit int, window time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, ok := r.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		if len(r.buckets) > 10000 {
			r.evict(now)
		}
		r.buckets[key] = &rateBucket{count: 1, windowEnd: now.Add(window)}
		return true
	}
	if bucket.count >= limit {
		return false
	}
	bucket.count++
	return true
}

func (r *RateLimiter) evict(now time.Time) {
	for k, b := range r.buckets {
		if now.After(b.windowEnd) {
			delete(r.buckets, k)
		}
	}
}

// RateLimitMiddleware rejects callers above limit requests per window with 429.
// scope separates counters of different route groups.
func RateLimitMiddleware(limiter Limiter, scope string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil || limit <= 0 || window <= 0 {
			return c.Next()
		}
		key := "ratelimit:" + scope + ":" + ClientIP(c)
		if !limiter.Allow(key, limit, window) {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(window.Seconds())))
			return http.WithRepErrMsg(c, http.TooManyRequests.Code, http.TooManyRequests.Msg, c.Path())
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		return c.Next()
	}
}
