package assets

import (
	"context"
	"sync"
)

// Loader produces the full asset table from a backing store. One call is
// one attempt: implementations do not retry.
type Loader interface {
	Load(ctx context.Context) (Table, error)
}

// Cache memoizes the loaded table for the lifetime of the process so that
// repeated requests never re-query the database. The dataset is treated as
// static: there is no expiry and no invalidation.
type Cache struct {
	loader Loader

	mu     sync.Mutex
	table  Table
	loaded bool
}

// NewCache wraps loader in an empty cache. Nothing is loaded until the
// first Get.
func NewCache(loader Loader) *Cache {
	return &Cache{loader: loader}
}

// Get returns the cached table, loading it on first use. Concurrent first
// calls serialize behind the mutex, so at most one load runs and every
// caller observes a fully populated table, never a partial one. A failed
// load is returned to the caller and not cached; a later Get attempts a
// fresh load.
func (c *Cache) Get(ctx context.Context) (Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.table, nil
	}

	table, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.table = table
	c.loaded = true
	return c.table, nil
}
