package querycache

import (
	"strings"
	"sync"
	"time"
)

// Cache is an in-process keyed cache with TTL expiry and prefix eviction.
// Callers namespace keys as "{role}:{userID}:{query}" so that everything a
// session may have cached can be evicted in one call on sign-in and sign-out.
// An explicit struct injected into services; never a package global.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry

	now func() time.Time // test hook
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Key builds a cache key from a role/user session scope and query parts.
func Key(role, userID string, parts ...string) string {
	all := append([]string{role, userID}, parts...)
	return strings.Join(all, ":")
}

// Get returns the cached value for key, or false when absent or expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// InvalidatePrefix evicts every entry whose key starts with prefix and
// returns the number of evicted entries.
func (c *Cache) InvalidatePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live entries, expired ones included until read.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
