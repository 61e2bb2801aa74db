package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/paraflow/pkg/httputil"
)

// ErrNetwork is returned when a remote backend cannot be reached.
var ErrNetwork = errors.New("cache backend unreachable")

const pingAttempts = 3

// pingDelay is the first wait between connection checks; tests shorten it.
var pingDelay = time.Second

// ping runs check until it succeeds or pingAttempts are used up. Failures
// are reported as [ErrNetwork].
func ping(ctx context.Context, backend string, check func(context.Context) error) error {
	return httputil.Retry(ctx, pingAttempts, pingDelay, func() error {
		if err := check(ctx); err != nil {
			return httputil.Retryable(fmt.Errorf("%w: %s: %v", ErrNetwork, backend, err))
		}
		return nil
	})
}
