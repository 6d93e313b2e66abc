package auth

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/observability"
)

type cacheEntry struct {
	identity   Identity
	verifiedAt time.Time
}

// Cache remembers verified tokens for ttl. An entry is usable while
// now - verifiedAt < ttl. A background sweep, started with Start, removes
// expired entries so the map stays bounded without request traffic.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
	logger  *logrus.Logger

	lifecycle sync.Mutex
	stop      chan struct{}
	done      chan struct{}
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// WithLogger sets the logger used by the sweep.
func WithLogger(logger *logrus.Logger) CacheOption {
	return func(c *Cache) { c.logger = logger }
}

func NewCache(ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached identity for token while its entry is fresh.
func (c *Cache) Get(token string) (Identity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[token]
	if !ok || c.now().Sub(entry.verifiedAt) >= c.ttl {
		return Identity{}, false
	}
	return entry.identity, true
}

// Put records that token was verified now.
func (c *Cache) Put(token string, id Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = cacheEntry{identity: id, verifiedAt: c.now()}
}

// Delete removes token from the cache.
func (c *Cache) Delete(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, token)
}

// Len returns the number of entries, fresh or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep removes every expired entry and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for token, entry := range c.entries {
		if now.Sub(entry.verifiedAt) >= c.ttl {
			delete(c.entries, token)
			removed++
		}
	}
	return removed
}

// Start runs Sweep every interval until Stop is called. Calling Start on a
// running cache is a no-op.
func (c *Cache) Start(interval time.Duration) {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	if c.stop != nil {
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop = stop
	c.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				removed := c.Sweep()
				if removed > 0 {
					observability.RecordCacheEvictions(removed)
					c.logger.WithField("removed", removed).Debug("Cache.Sweep")
				}
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts the sweep and waits for it to exit.
func (c *Cache) Stop() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	if c.stop == nil {
		return
	}
	close(c.stop)
	<-c.done
	c.stop = nil
	c.done = nil
}
