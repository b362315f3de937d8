package cache

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/ruimv/tribunal-backend/internal/query"
)

// Cache is a read cache for public case detail lookups. Only public results
// are ever stored, so a hit can be served without a visibility re-check.
type Cache interface {
	Get(key string) (*query.CaseView, bool)
	Set(key string, value *query.CaseView)
	Delete(key string)
	Clear()
	Stats() Stats
}

// Stats reports cache effectiveness for the health endpoint
type Stats struct {
	Hits       int64     `json:"hits"`
	Misses     int64     `json:"misses"`
	Size       int       `json:"size"`
	LastAccess time.Time `json:"last_access"`
}

type memoryCache struct {
	store   *gocache.Cache
	mu      sync.Mutex
	stats   Stats
	maxSize int
}

// New creates an in-memory cache with the given size bound and entry TTL
func New(maxSize int, ttl time.Duration) Cache {
	return &memoryCache{
		store:   gocache.New(ttl, ttl*2),
		maxSize: maxSize,
	}
}

func (c *memoryCache) Get(key string) (*query.CaseView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.LastAccess = time.Now()

	if data, found := c.store.Get(key); found {
		if view, ok := data.(*query.CaseView); ok {
			c.stats.Hits++
			return view, true
		}
	}

	c.stats.Misses++
	return nil, false
}

func (c *memoryCache) Set(key string, value *query.CaseView) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store.ItemCount() >= c.maxSize {
		c.evictOldest()
	}

	c.store.Set(key, value, gocache.DefaultExpiration)
}

func (c *memoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Delete(key)
}

func (c *memoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Flush()
	c.stats = Stats{}
}

func (c *memoryCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Size = c.store.ItemCount()
	return c.stats
}

// evictOldest drops the entry closest to expiry to stay under maxSize
func (c *memoryCache) evictOldest() {
	items := c.store.Items()
	if len(items) == 0 {
		return
	}

	var oldestKey string
	var oldest int64
	for key, item := range items {
		if oldestKey == "" || item.Expiration < oldest {
			oldestKey = key
			oldest = item.Expiration
		}
	}

	if oldestKey != "" {
		c.store.Delete(oldestKey)
	}
}

// CaseKey builds the cache key for a case detail lookup
func CaseKey(id uint) string {
	return fmt.Sprintf("case:%d", id)
}
