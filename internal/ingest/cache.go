package ingest

import (
	"container/list"
	"encoding/hex"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize is used when the configured capacity is not positive.
const DefaultCacheSize = 8

// NoUploadPrefix marks cache keys of loads that fell back to the local file.
const NoUploadPrefix = "no-upload:"

// ContentKey returns the hex BLAKE3-256 digest of data.
func ContentKey(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FallbackKey returns the cache key of a load without upload.
func FallbackKey(path string) string {
	return NoUploadPrefix + path
}

type entry struct {
	key    string
	result Result
}

// Cache is a content-keyed LRU of successful loads.
// Concurrent loads of the same key share one computation.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[string]*list.Element
	group    singleflight.Group
}

// NewCache creates a cache holding at most capacity snapshots.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get returns the cached result for key, marking it most recently used.
func (c *Cache) Get(key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return Result{}, false
	}
	c.order.MoveToFront(el)
	res := el.Value.(*entry).result
	res.Cached = true
	return res, true
}

// Do returns the cached result for key or runs load once for all concurrent callers.
// Only loaded results are stored; failures and no-data outcomes are recomputed next time.
func (c *Cache) Do(key string, load func() Result) Result {
	if res, ok := c.Get(key); ok {
		log.Debug().Str("key", key).Msg("Load cache hit")
		return res
	}

	v, _, shared := c.group.Do(key, func() (any, error) {
		if res, ok := c.Get(key); ok {
			return res, nil
		}
		res := load()
		if res.Status == StatusLoaded {
			c.put(key, res)
		}
		return res, nil
	})
	res := v.(Result)
	if shared {
		log.Debug().Str("key", key).Msg("Load shared with concurrent caller")
	}
	return res
}

func (c *Cache) put(key string, res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry).result = res
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, result: res})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		evicted := oldest.Value.(*entry).key
		delete(c.items, evicted)
		log.Debug().Str("key", evicted).Msg("Evicted snapshot from load cache")
	}
}

// Invalidate drops key from the cache.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Purge empties the cache.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
}

// Len returns the number of cached snapshots.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
