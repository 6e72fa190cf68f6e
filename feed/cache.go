package feed

import (
	"sync"
	"time"

	"digital-canvas/models"
)

// Cache holds a single transformed feed list together with the time it was
// stored. A TTL <= 0 never expires.
type Cache struct {
	mu        sync.RWMutex
	items     []models.TransformedFeedItem
	storedAt  time.Time
	populated bool

	ttl time.Duration
	now func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now}
}

// WithClock replaces the clock used for freshness checks.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

// Get returns the cached slice while it is fresh. The slice is shared with
// every other reader and must not be modified.
func (c *Cache) Get() ([]models.TransformedFeedItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.populated {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(c.storedAt) >= c.ttl {
		return nil, false
	}
	return c.items, true
}

// Set overwrites the slot.
func (c *Cache) Set(items []models.TransformedFeedItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	c.storedAt = c.now()
	c.populated = true
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.storedAt = time.Time{}
	c.populated = false
}

type CacheStats struct {
	Populated bool
	Fresh     bool
	StoredAt  time.Time
	Items     int
	TTL       time.Duration
}

func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStats{
		Populated: c.populated,
		Fresh:     c.populated && (c.ttl <= 0 || c.now().Sub(c.storedAt) < c.ttl),
		StoredAt:  c.storedAt,
		Items:     len(c.items),
		TTL:       c.ttl,
	}
}
