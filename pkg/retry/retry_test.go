package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errFlaky = errors.New("flaky")

func TestDo_EventuallySucceeds(t *testing.T) {
	calls := 0
	var retried []int
	err := Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errFlaky
		}
		return nil
	},
		WithMaxAttempts(5),
		WithBackoff(time.Millisecond, 2*time.Millisecond),
		OnRetry(func(attempt int, err error) { retried = append(retried, attempt) }),
	)
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(context.Context) error {
		calls++
		return errFlaky
	}, WithMaxAttempts(3), WithBackoff(time.Millisecond, time.Millisecond))
	assert.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("bad credentials")
	calls := 0
	err := Do(context.Background(), func(context.Context) error {
		calls++
		return permanent
	}, WithRetryIf(func(err error) bool { return !errors.Is(err, permanent) }))
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Do(ctx, func(context.Context) error { return errFlaky },
		WithMaxAttempts(10), WithBackoff(time.Second, time.Second))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDelay(t *testing.T) {
	c := &config{base: 100 * time.Millisecond, max: 300 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, c.delay(1))
	assert.Equal(t, 200*time.Millisecond, c.delay(2))
	assert.Equal(t, 300*time.Millisecond, c.delay(3))
	assert.Equal(t, 300*time.Millisecond, c.delay(40))

	c.jitter = true
	for i := 1; i < 5; i++ {
		d := c.delay(i)
		assert.Greater(t, d, time.Duration(0))
		assert.LessOrEqual(t, d, 300*time.Millisecond)
	}
}
