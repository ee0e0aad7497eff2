package series

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"sync"
	"time"
)

// cacheEntry represents one cached expansion result
type cacheEntry struct {
	result     []time.Time
	expiresAt  time.Time
	accessedAt time.Time
}

// expansionCache caches series expansion results. Expansions are pure
// functions of their inputs, so entries never go stale; the TTL only
// bounds memory.
type expansionCache struct {
	entries         map[string]*cacheEntry
	mutex           sync.RWMutex
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

// CacheConfig holds configuration for the expansion cache
type CacheConfig struct {
	TTL             time.Duration // How long entries stay valid
	MaxEntries      int           // Maximum number of entries before cleanup
	CleanupInterval time.Duration // How often to run cleanup
}

// DefaultCacheConfig provides sensible defaults for expansion caching
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      1000,
	CleanupInterval: 5 * time.Minute,
}

func newExpansionCache(config CacheConfig) *expansionCache {
	cache := &expansionCache{
		entries:         make(map[string]*cacheEntry),
		ttl:             config.TTL,
		maxEntries:      config.MaxEntries,
		cleanupInterval: config.CleanupInterval,
		stopCleanup:     make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// cacheKey hashes everything that determines an expansion result: the
// offset's frequency code and the range bounds.
func cacheKey(freq string, start, end time.Time) string {
	hasher := sha256.New()
	hasher.Write([]byte(freq))
	hasher.Write([]byte(start.Format(time.RFC3339Nano)))
	hasher.Write([]byte(end.Format(time.RFC3339Nano)))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

// get retrieves a cached result if it exists and hasn't expired
func (c *expansionCache) get(key string) ([]time.Time, bool) {
	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, false
	}

	now := time.Now()
	if now.After(entry.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		return nil, false
	}

	c.mutex.Lock()
	entry.accessedAt = now
	c.mutex.Unlock()

	return entry.result, true
}

// set stores a result in the cache
func (c *expansionCache) set(key string, result []time.Time) {
	now := time.Now()
	entry := &cacheEntry{
		result:     result,
		expiresAt:  now.Add(c.ttl),
		accessedAt: now,
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = entry

	if len(c.entries) > c.maxEntries {
		c.cleanup()
	}
}

// cleanup removes expired entries, then least recently accessed entries
// while over the limit. Callers must hold the write lock.
func (c *expansionCache) cleanup() {
	now := time.Now()

	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	if len(c.entries) > c.maxEntries {
		type keyAccess struct {
			key        string
			accessedAt time.Time
		}
		keys := make([]keyAccess, 0, len(c.entries))
		for key, entry := range c.entries {
			keys = append(keys, keyAccess{key: key, accessedAt: entry.accessedAt})
		}
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].accessedAt.Before(keys[j].accessedAt)
		})

		toRemove := len(c.entries) - c.maxEntries
		for i := 0; i < toRemove && i < len(keys); i++ {
			delete(c.entries, keys[i].key)
		}
	}
}

// cleanupLoop runs periodic cleanup
func (c *expansionCache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			c.cleanup()
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// stop terminates the cleanup goroutine
func (c *expansionCache) stop() {
	close(c.stopCleanup)
}

// len reports the number of live entries, for tests.
func (c *expansionCache) len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}
