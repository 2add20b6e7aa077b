// Package cache provides a small TTL cache for ticker search pages.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/quotedesk/quotedesk/internal/models"
)

// entry wraps a cached page with expiry and insertion order tracking.
type entry struct {
	page      *models.TickerPage
	expiry    time.Time
	insertIdx int64
}

// SearchCache caches ticker search pages to prevent duplicate round-trips
// to the quote backend. Keys are "QUERY:limit:offset". Summary responses
// must never go through this cache.
// Thread-safe with sync.RWMutex.
type SearchCache struct {
	mu         sync.RWMutex
	items      map[string]entry
	ttl        time.Duration
	maxEntries int
	nextIdx    int64
}

// New creates a new SearchCache with the given TTL and max entry count.
func New(ttl time.Duration, maxEntries int) *SearchCache {
	return &SearchCache{
		items:      make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// MakeKey builds a cache key from the search query and page bounds.
func MakeKey(q string, limit, offset int) string {
	return fmt.Sprintf("%s:%d:%d", strings.ToUpper(strings.TrimSpace(q)), limit, offset)
}

// Get returns a cached page if found and not expired.
func (c *SearchCache) Get(key string) (*models.TickerPage, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Now().After(e.expiry) {
		// Expired: remove lazily
		c.mu.Lock()
		if e2, ok2 := c.items[key]; ok2 && time.Now().After(e2.expiry) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.page, true
}

// Set stores a page in the cache. Evicts the oldest entry if at capacity.
func (c *SearchCache) Set(key string, page *models.TickerPage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{
		page:      page,
		expiry:    time.Now().Add(c.ttl),
		insertIdx: c.nextIdx,
	}
	c.nextIdx++

	// If key already exists, update in place (no capacity change)
	if _, exists := c.items[key]; exists {
		c.items[key] = e
		return
	}

	// Evict oldest if at capacity
	if len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	c.items[key] = e
}

// Len returns the number of cached entries, including any not yet lazily expired.
func (c *SearchCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// evictOldest removes the entry with the lowest insertIdx. Must be called with mu held.
func (c *SearchCache) evictOldest() {
	var oldestKey string
	var oldestIdx int64 = -1

	for key, e := range c.items {
		if oldestIdx == -1 || e.insertIdx < oldestIdx {
			oldestIdx = e.insertIdx
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
