package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[T any] struct {
	data    T
	created time.Time
}

// Cache memoizes keyed loads for a fixed duration. Expired entries are
// evicted lazily on the next read; there is no background sweep. One
// instance exists per logical record type (match, account, ...), constructed
// at startup and shared for the life of the process.
type Cache[T any] struct {
	name  string
	ttl   time.Duration
	mu    sync.Mutex
	items map[string]entry[T]
	group singleflight.Group

	now func() time.Time
}

func New[T any](name string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		name:  name,
		ttl:   ttl,
		items: make(map[string]entry[T]),
		now:   time.Now,
	}
}

func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		var zero T
		recordMiss(c.name)
		return zero, false
	}
	if c.now().Sub(e.created) > c.ttl {
		delete(c.items, key)
		var zero T
		recordMiss(c.name)
		return zero, false
	}
	recordHit(c.name)
	return e.data, true
}

// GetOrLoad returns the cached value if still fresh, otherwise runs loader
// and stores its result. Concurrent calls for the same key share one
// in-flight load; load errors are not cached.
func (c *Cache[T]) GetOrLoad(ctx context.Context, key string, loader func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent load may have completed while we waited on the group.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		c.Set(key, loaded)
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[T]{data: value, created: c.now()}
}

func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry[T])
}

func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
