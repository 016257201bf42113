package cache

import (
	"context"
	"sync"
	"time"

	"translationhub/internal/domain"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process export cache with per-entry expiry.
// Versioned keys are never read again once superseded, so Set sweeps
// expired entries at most once per ttl.
type MemoryCache struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	ttl       time.Duration
	nextSweep time.Time
	now       func() time.Time
}

// NewMemoryCache creates an in-memory cache whose entries live for ttl (0 = no expiration).
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the stored value unless it has expired.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores a copy of value.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	now := c.now()
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if c.ttl > 0 {
		entry.expiresAt = now.Add(c.ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ttl > 0 && !now.Before(c.nextSweep) {
		c.purgeLocked(now)
		c.nextSweep = now.Add(c.ttl)
	}
	c.entries[key] = entry
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops expired entries.
func (c *MemoryCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeLocked(c.now())
}

func (c *MemoryCache) purgeLocked(now time.Time) {
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

var _ domain.ExportCache = (*MemoryCache)(nil)
