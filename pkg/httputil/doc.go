// Package httputil provides retry helpers for outgoing HTTP calls.
//
// # Retry
//
// [Retry] runs an operation with exponential backoff. Only errors wrapped in
// [RetryableError] are retried; anything else is returned at once, so callers
// decide which failures are transient (timeouts, 5xx, rate limits):
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// A positive [RetryableError.After] stretches the next wait to honor an
// upstream Retry-After header. No single wait exceeds [MaxWait].
//
// The LLM integration retries chat completions through [Retry] and the
// Redis and MongoDB cache backends use it to wait for their server.
package httputil
