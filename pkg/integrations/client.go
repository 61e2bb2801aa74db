package integrations

import (
	"context"
	"time"

	"github.com/matzehuels/paraflow/pkg/cache"
	"github.com/matzehuels/paraflow/pkg/httputil"
	"github.com/matzehuels/paraflow/pkg/observability"
)

const keyTypeHTTP = "http"

// Client provides shared caching and retry for upstream API clients.
type Client struct {
	cache     cache.Cache
	keyer     cache.Keyer
	namespace string
	ttl       time.Duration

	attempts   int
	retryDelay time.Duration
}

// NewClient creates a Client that stores responses under namespace.
// A nil cache disables caching; a nil keyer uses [cache.DefaultKeyer].
func NewClient(c cache.Cache, keyer cache.Keyer, namespace string, ttl time.Duration) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &Client{
		cache:      c,
		keyer:      keyer,
		namespace:  namespace,
		ttl:        ttl,
		attempts:   3,
		retryDelay: time.Second,
	}
}

// Cached returns the stored response for key, or runs fetch and stores its
// result. If refresh is true, the cache is not read but is still written.
// Cache read and write failures are not fatal.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, fetch func() ([]byte, error)) ([]byte, error) {
	fullKey := c.keyer.HTTPKey(c.namespace, key)
	hooks := observability.Cache()

	if !refresh {
		if data, ok, err := c.cache.Get(ctx, fullKey); err == nil && ok {
			hooks.OnCacheHit(ctx, keyTypeHTTP)
			return data, nil
		}
		hooks.OnCacheMiss(ctx, keyTypeHTTP)
	}

	var data []byte
	err := httputil.Retry(ctx, c.attempts, c.retryDelay, func() error {
		var err error
		data, err = fetch()
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, fullKey, data, c.ttl); err == nil {
		hooks.OnCacheSet(ctx, keyTypeHTTP, len(data))
	}
	return data, nil
}

// SetRetry overrides the retry policy (default 3 attempts, 1s initial delay).
func (c *Client) SetRetry(attempts int, delay time.Duration) {
	c.attempts = attempts
	c.retryDelay = delay
}

// Namespace returns the cache namespace.
func (c *Client) Namespace() string { return c.namespace }
