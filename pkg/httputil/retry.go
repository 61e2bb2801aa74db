package httputil

import (
	"context"
	"errors"
	"time"
)

// MaxWait caps a single wait between attempts, including waits requested
// through [RetryableError.After].
const MaxWait = 30 * time.Second

// RetryableError marks a transient failure. A positive After asks [Retry]
// to wait at least that long before the next attempt, as a Retry-After
// header does.
type RetryableError struct {
	Err   error
	After time.Duration
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. It returns nil for a nil err.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is, or wraps, a [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// Retry calls fn until it succeeds, fails with a non-retryable error, runs
// out of attempts or ctx ends. The first wait is delay and each following
// wait doubles. The last error from fn is returned, or ctx.Err() when the
// context ends while waiting.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == attempts {
			return err
		}
		if err := sleep(ctx, waitFor(err, delay)); err != nil {
			return err
		}
		delay *= 2
	}
}

func waitFor(err error, backoff time.Duration) time.Duration {
	var re *RetryableError
	if errors.As(err, &re) && re.After > backoff {
		backoff = re.After
	}
	return min(backoff, MaxWait)
}

func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
