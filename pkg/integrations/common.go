package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	perrors "github.com/matzehuels/paraflow/pkg/errors"
	"github.com/matzehuels/paraflow/pkg/httputil"
)

const httpTimeout = 60 * time.Second

var (
	// ErrNotFound is returned when the requested resource doesn't exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for API requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// CheckStatus maps an HTTP status to an error. retryAfter is the raw
// Retry-After header, in seconds, and may be empty.
//
// 429 yields a retryable [perrors.RateLimitedError], 5xx a retryable
// [ErrNetwork], 404 [ErrNotFound] and 401/403 an INVALID_CONFIG error.
func CheckStatus(code int, retryAfter string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests:
		secs, _ := strconv.Atoi(retryAfter)
		return &httputil.RetryableError{
			Err:   &perrors.RateLimitedError{RetryAfter: secs},
			After: time.Duration(secs) * time.Second,
		}
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return perrors.New(perrors.ErrCodeInvalidConfig, "upstream rejected the credentials (status %d)", code)
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
