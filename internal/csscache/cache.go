// Package csscache memoizes generated CSS by theme fingerprint, optionally
// persisting entries to a JSON file between runs.
package csscache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/alexisbeaulieu97/themekit/internal/cssgen"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

const (
	fileVersion = "1"
	// MaxEntries bounds the cache. Inserting past it clears every entry.
	MaxEntries = 256
)

// Entry is one cached generation.
type Entry struct {
	Theme       string    `json:"theme"`
	CSS         string    `json:"css"`
	GeneratedAt time.Time `json:"generated_at"`
}

// File is the on-disk format.
type File struct {
	Version string           `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// Cache is safe for concurrent use.
type Cache struct {
	path    string
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

// New returns an in-memory cache. Save is a no-op.
func New() *Cache {
	return &Cache{entries: make(map[string]Entry), now: time.Now}
}

// Open returns a cache backed by path, loading it when the file exists.
func Open(path string) (*Cache, error) {
	c := New()
	c.path = path

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := c.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return c, nil
}

// Load replaces the in-memory entries with the file contents. A file written
// by a different version is ignored.
func (c *Cache) Load() error {
	if c.path == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse cache: %w", err)
	}

	c.entries = make(map[string]Entry, len(file.Entries))
	if file.Version != fileVersion {
		return nil
	}
	for k, v := range file.Entries {
		c.entries[k] = v
	}
	return nil
}

// Save writes the cache to disk atomically.
func (c *Cache) Save() error {
	if c.path == "" {
		return nil
	}

	c.mu.RLock()
	data, err := json.MarshalIndent(File{Version: fileVersion, Entries: c.entries}, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Get returns the entry stored under key.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	return e, ok
}

// Set stores e under key.
func (c *Cache) Set(key string, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= MaxEntries {
		c.entries = make(map[string]Entry)
	}
	c.entries[key] = e
}

// Invalidate removes key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// InvalidateAll removes every entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]Entry)
}

// Len reports the number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Generate returns cached CSS for doc and opts, generating and storing it on
// a miss. hit reports whether the cache served the result.
func (c *Cache) Generate(doc *theme.Document, opts cssgen.Options) (css string, hit bool, err error) {
	key, err := cssgen.Fingerprint(doc, opts)
	if err != nil {
		return "", false, err
	}
	if e, ok := c.Get(key); ok {
		return e.CSS, true, nil
	}

	css, err = cssgen.Generate(doc, opts)
	if err != nil {
		return "", false, err
	}
	c.Set(key, Entry{Theme: doc.Meta.Name, CSS: css, GeneratedAt: c.now().UTC()})
	return css, false, nil
}
