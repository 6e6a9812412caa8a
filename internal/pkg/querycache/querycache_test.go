package querycache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	t.Parallel()
	c := New(time.Minute)

	c.Set(Key("admin", "u1", "dashboard"), 42)

	got, ok := c.Get("admin:u1:dashboard")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	_, ok = c.Get("admin:u1:missing")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()
	c := New(time.Minute)

	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("admin:u1:dashboard", "value")

	current = current.Add(2 * time.Minute)

	_, ok := c.Get("admin:u1:dashboard")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_InvalidatePrefix(t *testing.T) {
	t.Parallel()
	c := New(time.Minute)

	c.Set(Key("admin", "u1", "dashboard"), 1)
	c.Set(Key("admin", "u1", "report", "2024"), 2)
	c.Set(Key("employee", "u2", "dashboard"), 3)

	// Evicting one session's scope leaves other sessions untouched
	evicted := c.InvalidatePrefix("admin:u1:")
	assert.Equal(t, 2, evicted)

	_, ok := c.Get("admin:u1:dashboard")
	assert.False(t, ok)
	_, ok = c.Get("employee:u2:dashboard")
	assert.True(t, ok)
}
