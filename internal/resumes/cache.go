package resumes

import (
	"sync"

	"resume-builder/resume/model"
)

const defaultCacheSize = 256

// Cache holds recently fetched records to skip repeated reads during the
// preview/export flow. Entries are keyed by owner and id together so a cached
// record can never leak across users, and every write or delete invalidates
// its entry. Size is bounded; the oldest entry is evicted first.
type Cache struct {
	mu      sync.Mutex
	max     int
	entries map[string]model.Resume
	order   []string
}

func NewCache(max int) *Cache {
	if max <= 0 {
		max = defaultCacheSize
	}
	return &Cache{
		max:     max,
		entries: make(map[string]model.Resume),
	}
}

func cacheKey(userID, resumeID string) string {
	return userID + "/" + resumeID
}

func (c *Cache) Get(userID, resumeID string) (model.Resume, bool) {
	if c == nil {
		return model.Resume{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.entries[cacheKey(userID, resumeID)]
	return rec, ok
}

func (c *Cache) Set(rec model.Resume) {
	if c == nil || rec.ID == "" || rec.UserID == "" {
		return
	}
	key := cacheKey(rec.UserID, rec.ID)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		if len(c.order) >= c.max {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = rec
}

func (c *Cache) Invalidate(userID, resumeID string) {
	if c == nil {
		return
	}
	key := cacheKey(userID, resumeID)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
