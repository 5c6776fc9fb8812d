package extract

import "sync"

// Cache memoizes label extractions within one batch run, keyed by the
// normalized CODE_COLOR key. A hit short-circuits the OCR call for item
// images of the same product. The cache must be constructed fresh per
// coordinator run and never shared across batches.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Fields
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]Fields)}
}

func (c *Cache) Get(key string) (Fields, bool) {
	if key == "" {
		return Fields{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.entries[key]
	return f, ok
}

// Put stores an extraction; re-extracting the same key overwrites.
func (c *Cache) Put(key string, f Fields) {
	if key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = f
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
