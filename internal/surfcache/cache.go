// Package surfcache memoizes normalized surfaces keyed by surface id plus
// a content hash of the raw payload, so the UI layer can skip re-renders
// via pointer identity when a payload has not changed between state ticks.
package surfcache

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/workroomhq/surfacegate/internal/surface"
)

// DefaultCapacity bounds the number of distinct keys held.
const DefaultCapacity = 100

type entry struct {
	key     string
	surface *surface.Surface
}

// Cache is a bounded insertion-ordered map. Eviction removes the oldest
// inserted keys, not the least recently used: a Get hit does not refresh
// an entry's position, so a hot entry inserted early can be evicted before
// a cold one inserted late. That quirk is part of the contract and is
// pinned by tests; upgrading it to true LRU would change observable
// eviction behavior.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*surface.Surface
	order    []string
}

// New returns a cache bounded to capacity keys. Non-positive capacities
// fall back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*surface.Surface, capacity),
	}
}

// ContentHash derives the cache key component from a raw payload by
// hashing its JSON serialization. This is a documented approximation, not
// a canonical digest: it is order-sensitive for array content and
// collision-prone for semantically equal payloads that serialize
// differently. Values that cannot be serialized fall back to their string
// coercion.
func ContentHash(rawPayload any) string {
	data, err := json.Marshal(rawPayload)
	if err != nil {
		data = []byte(fmt.Sprint(rawPayload))
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

func cacheKey(surfaceID, contentHash string) string {
	return surfaceID + ":" + contentHash
}

// Get returns the cached surface for (surfaceID, contentHash) by
// reference, or nil on a miss. A hit does not affect eviction order.
func (c *Cache) Get(surfaceID, contentHash string) *surface.Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[cacheKey(surfaceID, contentHash)]
}

// Put stores a normalized surface, evicting the oldest inserted keys when
// the capacity would be exceeded.
func (c *Cache) Put(surfaceID, contentHash string, s *surface.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(surfaceID, contentHash)
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = s

	for len(c.entries) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Len reports the number of cached keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear empties the cache unconditionally. Callers use it for test
// isolation and to force full re-validation under memory pressure.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*surface.Surface, c.capacity)
	c.order = nil
}
