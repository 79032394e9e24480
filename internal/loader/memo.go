package loader

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/cwa-terminal/internal/models"
)

// freshnessWindow bounds how long a normalized forecast is reused before
// the pipeline runs again.
const freshnessWindow = 15 * time.Minute

// memoCache is a time-bounded result cache in front of the whole pipeline.
// The clock is injected so expiry is testable.
type memoCache struct {
	clock clockwork.Clock
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]memoEntry
}

type memoEntry struct {
	forecast *models.Forecast
	storedAt time.Time
}

func newMemoCache(clock clockwork.Clock, ttl time.Duration) *memoCache {
	return &memoCache{
		clock:   clock,
		ttl:     ttl,
		entries: make(map[string]memoEntry),
	}
}

func (c *memoCache) get(key string) (*models.Forecast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Since(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.forecast, true
}

func (c *memoCache) put(key string, forecast *models.Forecast) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoEntry{forecast: forecast, storedAt: c.clock.Now()}
}

func (c *memoCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoEntry)
}
