package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/paraflow/pkg/cache"
	"github.com/matzehuels/paraflow/pkg/errors"
)

func TestCacheDir(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		c := New(os.Stderr, LogInfo)
		c.Config.Cache.Dir = "/tmp/paraflow-test-cache"
		dir, err := c.cacheDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/paraflow-test-cache", dir)
	})

	t.Run("xdg default", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
		dir, err := New(os.Stderr, LogInfo).cacheDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/xdg", "paraflow"), dir)
	})

	t.Run("remote backend", func(t *testing.T) {
		c := New(os.Stderr, LogInfo)
		c.Config.Cache.Backend = cache.BackendRedis
		_, err := c.cacheDir()
		assert.True(t, errors.Is(err, errors.ErrCodeUnsupported), "err = %v", err)
	})
}

// seededCLI returns a CLI whose file cache holds one entry of each kind.
func seededCLI(t *testing.T) (*CLI, *cache.FileCache) {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	k := cache.NewDefaultKeyer()
	for _, key := range []string{
		k.LayoutKey("a", cache.LayoutKeyOpts{}),
		k.ArtifactKey("a", cache.ArtifactKeyOpts{Format: "png"}),
		k.HTTPKey("llm", "tea"),
	} {
		require.NoError(t, fc.Set(t.Context(), key, []byte("{}"), 0))
	}

	c := New(&bytes.Buffer{}, LogInfo)
	c.Config.Cache.Dir = fc.Dir()
	return c, fc
}

func TestCacheClearCommand(t *testing.T) {
	c, fc := seededCLI(t)

	cmd := c.cacheClearCommand()
	cmd.SetArgs([]string{"--kind", "artifact"})
	require.NoError(t, cmd.Execute())
	usage, err := fc.Usage()
	require.NoError(t, err)
	assert.NotContains(t, usage, cache.KindArtifact)
	assert.Contains(t, usage, cache.KindLayout)

	cmd = c.cacheClearCommand()
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	usage, err = fc.Usage()
	require.NoError(t, err)
	assert.Empty(t, usage)
}

func TestCacheClearRejectsUnknownKind(t *testing.T) {
	c, _ := seededCLI(t)
	cmd := c.cacheClearCommand()
	cmd.SetArgs([]string{"--kind", "thumbnails"})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "err = %v", err)
}

func TestCacheInfoCommand(t *testing.T) {
	c, fc := seededCLI(t)
	var out bytes.Buffer
	cmd := c.cacheInfoCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	for _, want := range []string{"layout", "artifact", "http", fc.Dir()} {
		assert.Contains(t, out.String(), want)
	}
}

func TestCachePathCommand(t *testing.T) {
	c, fc := seededCLI(t)
	var out bytes.Buffer
	cmd := c.cachePathCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, fc.Dir(), strings.TrimSpace(out.String()))
}

func TestFormatBytes(t *testing.T) {
	tests := map[int64]string{
		0:           "0 B",
		1023:        "1023 B",
		1024:        "1.0 KiB",
		1536:        "1.5 KiB",
		5 << 20:     "5.0 MiB",
		3 << 30 / 2: "1.5 GiB",
	}
	for n, want := range tests {
		assert.Equal(t, want, formatBytes(n), "formatBytes(%d)", n)
	}
}
