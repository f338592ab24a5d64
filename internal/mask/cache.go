package mask

import "sync"

// maskCache is the process-wide compiled mask cache, keyed by
// (format, canonical notation set). Entries are never evicted; masks are
// small and finite in number for a running application. A published
// *Mask is immutable, so readers never coordinate with writers beyond
// the initial publish.
type maskCache struct {
	mu    sync.RWMutex
	masks map[string]*Mask
}

var cache = &maskCache{masks: make(map[string]*Mask)}

func (c *maskCache) get(key string) *Mask {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.masks[key]
}

// publish installs m under key unless another goroutine got there first,
// and returns the instance all callers should share. Concurrent misses
// may compile equal masks, but only the first published instance wins.
func (c *maskCache) publish(key string, m *Mask) *Mask {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.masks[key]; ok {
		return existing
	}
	c.masks[key] = m
	return m
}

func (c *maskCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.masks)
}
