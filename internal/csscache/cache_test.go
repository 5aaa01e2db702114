package csscache

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/cssgen"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func TestCacheGenerateMemoizes(t *testing.T) {
	cache := New()
	doc := theme.Default()

	first, hit, err := cache.Generate(doc, cssgen.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := cache.Generate(doc.Clone(), cssgen.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, hit, "deep-equal documents share an entry")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	changed := doc.Clone()
	changed.Colors[theme.RolePrimary] = "#000000"
	third, hit, err := cache.Generate(changed, cssgen.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NotEqual(t, first, third)
	assert.Equal(t, 2, cache.Len())
}

func TestCacheGenerateDoesNotStoreFailures(t *testing.T) {
	cache := New()
	doc := theme.Default()
	doc.Spacing["md"] = "1rem; }"

	_, _, err := cache.Generate(doc, cssgen.DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheInvalidate(t *testing.T) {
	cache := New()
	cache.Set("a", Entry{CSS: "a"})
	cache.Set("b", Entry{CSS: "b"})

	cache.Invalidate("a")
	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())

	cache.InvalidateAll()
	assert.Equal(t, 0, cache.Len())
}

func TestCacheBounded(t *testing.T) {
	cache := New()
	for i := 0; i < MaxEntries; i++ {
		cache.Set(strconv.Itoa(i), Entry{})
	}
	assert.Equal(t, MaxEntries, cache.Len())

	cache.Set("0", Entry{CSS: "updated"})
	assert.Equal(t, MaxEntries, cache.Len(), "overwriting does not evict")

	cache.Set("overflow", Entry{})
	assert.Equal(t, 1, cache.Len())
}

func TestCacheSaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "css-cache.json")

	cache, err := Open(path)
	require.NoError(t, err)
	css, _, err := cache.Generate(theme.Default(), cssgen.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, cache.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	cached, hit, err := reopened.Generate(theme.Default(), cssgen.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, css, cached)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file is renamed away")
}

func TestCacheOpenIgnoresOtherVersions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"0","entries":{"k":{"css":"x"}}}`), 0o644))

	cache, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestMemoryCacheSaveIsNoop(t *testing.T) {
	cache := New()
	cache.Set("k", Entry{})
	assert.NoError(t, cache.Save())
	assert.NoError(t, cache.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestCacheConcurrency(t *testing.T) {
	cache := New()
	doc := theme.Default()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, _, err := cache.Generate(doc, cssgen.DefaultOptions())
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, cache.Len())
}
