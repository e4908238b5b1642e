package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// memoryEntry holds a cached value with its write timestamp.
type memoryEntry struct {
	value     string
	timestamp time.Time
}

// InMemoryCache is a thread-safe in-process cache with TTL support. It is
// the fallback backend when no Redis URL is configured, and the backend
// used by tests.
type InMemoryCache struct {
	entries map[string]memoryEntry
	mu      sync.RWMutex
	ttl     time.Duration
}

// NewInMemoryCache creates an in-memory cache. A non-positive ttl means
// entries never expire.
func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	if ttl < 0 {
		ttl = 0
	}
	return &InMemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (c *InMemoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false, nil
	}

	if c.expired(entry) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false, nil
	}

	return entry.value, true, nil
}

func (c *InMemoryCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{value: value, timestamp: time.Now()}
	return nil
}

// Keys supports the prefix patterns used by invalidation ("prefix*").
// Expired entries are not reported.
func (c *InMemoryCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")

	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	for key, entry := range c.entries {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if c.expired(entry) {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (c *InMemoryCache) DeleteMany(ctx context.Context, keys []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *InMemoryCache) Close() error {
	return nil
}

// Len returns the number of entries, including expired ones.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *InMemoryCache) expired(entry memoryEntry) bool {
	return c.ttl > 0 && time.Since(entry.timestamp) > c.ttl
}

var _ TranslationCache = (*InMemoryCache)(nil)
