// Package cache holds bounded caches of location search results keyed by the
// exact query text.
package cache

import (
	"context"
	"sync"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/directory"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// DefaultCapacity is the maximum number of queries a cache holds.
const DefaultCapacity = 100

// Cache maps a query string to the results it produced.
type Cache interface {
	Get(ctx context.Context, query string) ([]domain.Location, bool)
	Set(ctx context.Context, query string, results []domain.Location) error
	Clear(ctx context.Context) error
}

// MemoryCache is a FIFO cache held in process memory. Once full, storing a new
// query evicts the oldest one. Overwriting a query does not refresh its age.
type MemoryCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string][]domain.Location
	order    []string
}

// NewMemoryCache returns an empty cache holding at most capacity queries.
// A non-positive capacity means DefaultCapacity.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryCache{
		capacity: capacity,
		entries:  make(map[string][]domain.Location),
	}
}

func (c *MemoryCache) Get(_ context.Context, query string) ([]domain.Location, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	results, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	return directory.CloneLocations(results), true
}

func (c *MemoryCache) Set(_ context.Context, query string, results []domain.Location) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[query]; !exists {
		for len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, query)
	}
	c.entries[query] = directory.CloneLocations(results)
	return nil
}

func (c *MemoryCache) Clear(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]domain.Location)
	c.order = nil
	return nil
}

// Len reports how many queries are cached.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
