package server

import (
	"context"
	"sync"
	"time"

	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/platform"
)

// cacheEntry holds a cached window list with its timestamp.
type cacheEntry struct {
	windows   []model.Window
	timestamp time.Time
}

// WindowCache provides a TTL-based cache for window listings, keyed by
// listing options.
type WindowCache struct {
	mu      sync.Mutex
	entries map[platform.ListOptions]cacheEntry
	ttl     time.Duration
}

// NewWindowCache creates a new cache. A ttl of 0 disables caching.
func NewWindowCache(ttl time.Duration) *WindowCache {
	return &WindowCache{
		entries: make(map[platform.ListOptions]cacheEntry),
		ttl:     ttl,
	}
}

// ListWindows returns the cached listing if within TTL, otherwise lists fresh.
// The caller must hold the provider mutex.
func (c *WindowCache) ListWindows(ctx context.Context, reader platform.Reader, opts platform.ListOptions) ([]model.Window, error) {
	if c.ttl == 0 {
		return reader.ListWindows(ctx, opts)
	}

	c.mu.Lock()
	if entry, ok := c.entries[opts]; ok && time.Since(entry.timestamp) < c.ttl {
		windows := entry.windows
		c.mu.Unlock()
		return windows, nil
	}
	c.mu.Unlock()

	windows, err := reader.ListWindows(ctx, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[opts] = cacheEntry{windows: windows, timestamp: time.Now()}
	c.mu.Unlock()

	return windows, nil
}

// InvalidateAll clears the entire cache.
func (c *WindowCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[platform.ListOptions]cacheEntry)
}
