// Package cache stores pipeline results and HTTP responses.
//
// All backends implement [Cache], a byte-oriented key/value store with
// per-entry TTLs:
//
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [MemoryCache]: an in-process map, for the live editor and tests
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer] so that CLI and server agree on the layout:
//
//	k := cache.NewDefaultKeyer()
//	key := k.LayoutKey(cache.Hash([]byte(text)), cache.LayoutKeyOpts{VizType: "flowchart", FontSize: 16})
//
// A miss is reported as (nil, false, nil); errors are reserved for backend
// failures, which callers are free to treat as misses.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Default TTLs per entry kind.
const (
	TTLHTTP     = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
