package cache

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// NoExpiration keeps an entry until it is deleted or the cache is flushed.
const NoExpiration = cache.NoExpiration

// Cache is the key/value store shared by the journal services.
type Cache interface {
	Set(key string, value interface{}, duration time.Duration)
	Get(key string) (interface{}, bool)
	GetWithExpiration(key string) (interface{}, time.Time, bool)
	Delete(key string)
	DeletePrefix(prefix string)
	Flush()
}

type goCache struct {
	internal *cache.Cache
}

// NewCache returns a go-cache backed Cache with the given default expiration and cleanup interval.
func NewCache(defaultExpiration, cleanupInterval time.Duration) Cache {
	return &goCache{
		internal: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *goCache) Set(key string, value interface{}, duration time.Duration) {
	c.internal.Set(key, value, duration)
}

func (c *goCache) Get(key string) (interface{}, bool) {
	return c.internal.Get(key)
}

func (c *goCache) GetWithExpiration(key string) (interface{}, time.Time, bool) {
	return c.internal.GetWithExpiration(key)
}

func (c *goCache) Delete(key string) {
	c.internal.Delete(key)
}

func (c *goCache) DeletePrefix(prefix string) {
	for key := range c.internal.Items() {
		if strings.HasPrefix(key, prefix) {
			c.internal.Delete(key)
		}
	}
}

func (c *goCache) Flush() {
	c.internal.Flush()
}

// GetFromCache fetches key and asserts it to T. A value of another type counts as a miss.
func GetFromCache[T any](c Cache, key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	val, found := c.Get(key)
	if !found {
		return zero, false
	}
	typedVal, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typedVal, true
}
