package construction

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BuildQueue_Go/internal/queue"
)

// viewCache keeps assembled views keyed by colony and empire generation, so
// any mutation naturally retires every older entry
type viewCache struct {
	lru *expirable.LRU[string, queue.View]
}

// newViewCache returns nil when caching is disabled
func newViewCache(size int, ttl time.Duration) *viewCache {
	if size <= 0 || ttl <= 0 {
		return nil
	}
	return &viewCache{
		lru: expirable.NewLRU[string, queue.View](size, nil, ttl),
	}
}

func viewKey(starKey, colonyKey string, generation uint64) string {
	return fmt.Sprintf("%s:%s:%d", starKey, colonyKey, generation)
}

// Get retrieves a view. A nil cache always misses.
func (c *viewCache) Get(key string) (queue.View, bool) {
	if c == nil {
		return queue.View{}, false
	}
	return c.lru.Get(key)
}

// Set stores a view
func (c *viewCache) Set(key string, view queue.View) {
	if c == nil {
		return
	}
	c.lru.Add(key, view)
}

// Len returns the number of cached views
func (c *viewCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
