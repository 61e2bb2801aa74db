package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	pingDelay = time.Millisecond
	os.Exit(m.Run())
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.HTTPKey("openai", "describe:tea"); got != "http:openai:describe:tea" {
		t.Errorf("HTTPKey unexpected: %s", got)
	}

	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{VizType: "flowchart", FontSize: 16})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{VizType: "nodelink", FontSize: 16})
	lk3 := k.LayoutKey("hash123", LayoutKeyOpts{VizType: "flowchart", FontSize: 12})
	if lk1 == lk2 || lk1 == lk3 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(lk1, "layout:") {
		t.Errorf("LayoutKey prefix: %s", lk1)
	}
	if lk1 != k.LayoutKey("hash123", LayoutKeyOpts{VizType: "flowchart", FontSize: 16}) {
		t.Error("LayoutKey should be deterministic")
	}

	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png"})
	ak3 := k.ArtifactKey("hash456", ArtifactKeyOpts{Format: "svg"})
	if ak1 == ak2 || ak1 == ak3 {
		t.Error("Different artifact inputs should produce different keys")
	}
}

func TestWithNamespace(t *testing.T) {
	k := WithNamespace(NewDefaultKeyer(), "staging")

	if got := k.HTTPKey("openai", "x"); got != "staging/http:openai:x" {
		t.Errorf("HTTPKey = %s", got)
	}
	if got := k.LayoutKey("h", LayoutKeyOpts{}); !strings.HasPrefix(got, "staging/layout:") {
		t.Errorf("LayoutKey should be namespaced: %s", got)
	}
	if got := k.ArtifactKey("h", ArtifactKeyOpts{}); !strings.HasPrefix(got, "staging/artifact:") {
		t.Errorf("ArtifactKey should be namespaced: %s", got)
	}

	if got := WithNamespace(nil, "").HTTPKey("a", "b"); got != "http:a:b" {
		t.Errorf("empty namespace should leave keys alone: %s", got)
	}
	if got := WithNamespace(nil, "p").HTTPKey("a", "b"); got != "p/http:a:b" {
		t.Errorf("nil inner should use the default keyer: %s", got)
	}
}

// testCache exercises the Cache contract shared by every storing backend.
func testCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "k", []byte("v1"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v1" {
		t.Fatalf("Get(k) = %q, %v, %v", data, hit, err)
	}

	if err := c.Set(ctx, "k", []byte("v2"), 0); err != nil {
		t.Fatalf("overwrite error: %v", err)
	}
	if data, _, _ := c.Get(ctx, "k"); string(data) != "v2" {
		t.Errorf("after overwrite Get(k) = %q, want v2", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of missing key should not error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	testCache(t, c)
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.path("k"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v; want clean miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d, want 3", n)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory not empty after Clear: %d entries", len(entries))
	}
	if c.Dir() != dir {
		t.Errorf("Dir = %s, want %s", c.Dir(), dir)
	}
}

func TestFileCacheByKind(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	k := WithNamespace(nil, "staging")
	entries := []struct {
		key string
		ttl time.Duration
	}{
		{k.LayoutKey("a", LayoutKeyOpts{}), time.Hour},
		{k.LayoutKey("b", LayoutKeyOpts{}), time.Minute},
		{k.ArtifactKey("a", ArtifactKeyOpts{Format: "png"}), 0},
		{NewDefaultKeyer().HTTPKey("llm", "tea"), time.Minute},
	}
	for _, e := range entries {
		if err := c.Set(ctx, e.key, []byte("data"), e.ttl); err != nil {
			t.Fatal(err)
		}
	}

	now = now.Add(2 * time.Minute)
	usage, err := c.Usage()
	if err != nil {
		t.Fatal(err)
	}
	if u := usage[KindLayout]; u.Entries != 2 || u.Expired != 1 || u.Bytes == 0 {
		t.Errorf("layout usage = %+v", u)
	}
	if u := usage[KindHTTP]; u.Entries != 1 || u.Expired != 1 {
		t.Errorf("http usage = %+v", u)
	}

	n, err := c.Prune()
	if err != nil || n != 2 {
		t.Errorf("Prune() = %d, %v; want 2", n, err)
	}

	n, err = c.Clear(KindArtifact)
	if err != nil || n != 1 {
		t.Errorf("Clear(artifact) = %d, %v; want 1", n, err)
	}
	if _, hit, _ := c.Get(ctx, k.LayoutKey("a", LayoutKeyOpts{})); !hit {
		t.Error("layout entry should survive clearing artifacts")
	}
}

func TestKeyKind(t *testing.T) {
	tests := map[string]string{
		"layout:abc":         "layout",
		"staging/layout:abc": "layout",
		"http:llm:a/b":       "http",
		"plain":              "plain",
	}
	for key, want := range tests {
		if got := keyKind(key); got != want {
			t.Errorf("keyKind(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestMemoryCache(t *testing.T) {
	testCache(t, NewMemoryCache())
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}

	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be dropped, Len = %d", c.Len())
	}
}

func TestMemoryCacheCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	in := []byte("abc")
	_ = c.Set(ctx, "k", in, 0)
	in[0] = 'x'

	out, _, _ := c.Get(ctx, "k")
	if string(out) != "abc" {
		t.Errorf("Set should copy its input, got %q", out)
	}
	out[0] = 'y'
	again, _, _ := c.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("Get should return a copy, got %q", again)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		opts    Options
		want    string
		wantErr bool
	}{
		{name: "DefaultFile", opts: Options{Dir: t.TempDir()}, want: "*cache.FileCache"},
		{name: "Memory", opts: Options{Backend: BackendMemory}, want: "*cache.MemoryCache"},
		{name: "None", opts: Options{Backend: BackendNone}, want: "cache.NullCache"},
		{name: "FileWithoutDir", opts: Options{Backend: BackendFile}, wantErr: true},
		{name: "RedisWithoutAddr", opts: Options{Backend: BackendRedis}, wantErr: true},
		{name: "MongoWithoutURI", opts: Options{Backend: BackendMongo}, wantErr: true},
		{name: "Unknown", opts: Options{Backend: "s3"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Open(ctx, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer c.Close()
			if got := fmt.Sprintf("%T", c); got != tt.want {
				t.Errorf("Open() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPing(t *testing.T) {
	ctx := context.Background()

	calls := 0
	err := ping(ctx, "test", func(context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("connection refused")
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("ping() = %v after %d calls, want success after 2", err, calls)
	}

	calls = 0
	err = ping(ctx, "test", func(context.Context) error {
		calls++
		return errors.New("connection refused")
	})
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("ping() = %v, want ErrNetwork", err)
	}
	if calls != pingAttempts {
		t.Errorf("calls = %d, want %d", calls, pingAttempts)
	}
}

func TestPingContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ping(ctx, "test", func(context.Context) error {
		return errors.New("connection refused")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ping() = %v, want context.Canceled", err)
	}
}
