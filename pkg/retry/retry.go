// Package retry re-runs an operation with exponential backoff until it
// succeeds, the attempt budget is spent, or the context ends.
package retry

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

type Func func(ctx context.Context) error

// RetryIf reports whether err is worth another attempt.
type RetryIf func(err error) bool

type config struct {
	attempts int
	base     time.Duration
	max      time.Duration
	jitter   bool
	retryIf  RetryIf
	onRetry  func(attempt int, err error)
}

type Option func(*config)

// WithMaxAttempts counts the first call.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithBackoff sets the first delay and the cap. Delays double between attempts.
func WithBackoff(base, max time.Duration) Option {
	return func(c *config) {
		if base > 0 {
			c.base = base
		}
		if max >= base {
			c.max = max
		}
	}
}

// WithoutJitter makes delays deterministic.
func WithoutJitter() Option {
	return func(c *config) { c.jitter = false }
}

func WithRetryIf(fn RetryIf) Option {
	return func(c *config) {
		if fn != nil {
			c.retryIf = fn
		}
	}
}

// OnRetry is called before each wait.
func OnRetry(fn func(attempt int, err error)) Option {
	return func(c *config) { c.onRetry = fn }
}

// Do runs fn until it returns nil. It returns the last error from fn, or the
// context error when ctx ends first.
func Do(ctx context.Context, fn Func, opts ...Option) error {
	c := &config{
		attempts: 3,
		base:     200 * time.Millisecond,
		max:      5 * time.Second,
		jitter:   true,
		retryIf:  Retryable,
	}
	for _, opt := range opts {
		opt(c)
	}

	var err error
	for attempt := 1; ; attempt++ {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt >= c.attempts || !c.retryIf(err) {
			return err
		}
		if c.onRetry != nil {
			c.onRetry(attempt, err)
		}

		timer := time.NewTimer(c.delay(attempt))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

func (c *config) delay(attempt int) time.Duration {
	d := c.base << (attempt - 1)
	if d <= 0 || d > c.max {
		d = c.max
	}
	if c.jitter && d > 0 {
		// full jitter
		d = time.Duration(rand.Int64N(int64(d)) + 1)
	}
	return d
}

// Retryable retries everything except context cancellation and deadlines.
func Retryable(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}
