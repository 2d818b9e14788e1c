package cache

import (
	"context"
	"sync"
	"time"
)

var _ Cache = &MemoryCache{}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// MemoryCache is a mutex guarded TTL map. Expired entries are dropped lazily
// on read and swept on Len and Clear.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if entry.expired() {
		delete(c.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{value: value, expiresAt: expiresAt}
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweepLocked()
	cleared := int64(len(c.entries))
	c.entries = make(map[string]memoryEntry)
	return cleared, nil
}

func (c *MemoryCache) Len(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweepLocked()
	return int64(len(c.entries)), nil
}

func (c *MemoryCache) sweepLocked() {
	for key, entry := range c.entries {
		if entry.expired() {
			delete(c.entries, key)
		}
	}
}
