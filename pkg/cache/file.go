package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

var errCorrupt = errors.New("corrupt cache entry")

// FileCache stores each entry as a JSON file under dir, sharded into
// subdirectories by the first byte of the key hash. It is the CLI default.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

// fileEntry is the on-disk form. The key is kept so entries can be listed
// by kind.
type fileEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, err := readEntry(c.path(key))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case errors.Is(err, errCorrupt), err == nil && e.expired(c.now()):
		os.Remove(c.path(key))
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	return e.Data, true, nil
}

// Set writes the entry to a temporary file and renames it into place, so a
// concurrent Get never sees a partial entry.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Key: key, Data: data}
	if ttl > 0 {
		e.ExpiresAt = c.now().Add(ttl)
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (c *FileCache) Close() error { return nil }

// Usage summarizes the entries of one kind.
type Usage struct {
	Entries int
	Bytes   int64
	Expired int
}

// Usage reports entry counts and sizes per key kind (the segment before the
// first ':' after any namespace).
func (c *FileCache) Usage() (map[string]Usage, error) {
	usage := make(map[string]Usage)
	now := c.now()
	err := c.walk(func(path string, e fileEntry, size int64) error {
		kind := keyKind(e.Key)
		u := usage[kind]
		u.Entries++
		u.Bytes += size
		if e.expired(now) {
			u.Expired++
		}
		usage[kind] = u
		return nil
	})
	return usage, err
}

// Clear removes the entries whose kind is in kinds, or every entry when
// kinds is empty, and returns how many were removed. Unreadable entries
// are removed only by a full clear.
func (c *FileCache) Clear(kinds ...string) (int, error) {
	count := 0
	err := c.walk(func(path string, e fileEntry, _ int64) error {
		if len(kinds) > 0 && !slices.Contains(kinds, keyKind(e.Key)) {
			return nil
		}
		if err := os.Remove(path); err == nil {
			count++
		}
		return nil
	})
	if err != nil {
		return count, err
	}
	if len(kinds) == 0 {
		count += c.removeUnreadable()
	}
	c.removeEmptyShards()
	return count, nil
}

// Prune removes expired entries and returns how many were removed.
func (c *FileCache) Prune() (int, error) {
	now := c.now()
	count := 0
	err := c.walk(func(path string, e fileEntry, _ int64) error {
		if e.expired(now) && os.Remove(path) == nil {
			count++
		}
		return nil
	})
	c.removeEmptyShards()
	return count, err
}

// walk calls fn for every readable entry file.
func (c *FileCache) walk(fn func(path string, e fileEntry, size int64) error) error {
	return filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		e, err := readEntry(path)
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		return fn(path, e, info.Size())
	})
}

func (c *FileCache) removeUnreadable() int {
	count := 0
	filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && os.Remove(path) == nil {
			count++
		}
		return nil
	})
	return count
}

func (c *FileCache) removeEmptyShards() {
	shards, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, s := range shards {
		if s.IsDir() {
			os.Remove(filepath.Join(c.dir, s.Name())) // fails unless empty
		}
	}
}

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

func readEntry(path string) (fileEntry, error) {
	var e fileEntry
	b, err := os.ReadFile(path)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(b, &e); err != nil {
		return e, fmt.Errorf("%w: %s: %v", errCorrupt, path, err)
	}
	return e, nil
}

// keyKind returns "layout" for "layout:..." and "staging/layout:...".
func keyKind(key string) string {
	if i := strings.LastIndexByte(key[:max(strings.IndexByte(key, ':'), 0)], '/'); i >= 0 {
		key = key[i+1:]
	}
	kind, _, _ := strings.Cut(key, ":")
	return kind
}

var _ Cache = (*FileCache)(nil)
