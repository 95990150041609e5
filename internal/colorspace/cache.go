package colorspace

import "sync"

// Cache memoizes RGB<->HSL conversions keyed by the exact input value.
//
// The cache is unbounded and lives as long as its owner. The set of distinct
// colors a session converts is small, so no eviction policy is applied;
// Clear releases everything at once.
//
// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu     sync.RWMutex
	toHSL  map[RGB]HSL
	toRGB  map[HSL]RGB
	hits   uint64
	misses uint64
}

// CacheStats is a snapshot of cache effectiveness.
type CacheStats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

// NewCache creates an empty conversion cache.
func NewCache() *Cache {
	return &Cache{
		toHSL: make(map[RGB]HSL),
		toRGB: make(map[HSL]RGB),
	}
}

func (c *Cache) hsl(in RGB) HSL {
	c.mu.Lock()
	defer c.mu.Unlock()
	if out, ok := c.toHSL[in]; ok {
		c.hits++
		return out
	}
	c.misses++
	out := RGBToHSL(in)
	c.toHSL[in] = out
	return out
}

func (c *Cache) rgb(in HSL) RGB {
	c.mu.Lock()
	defer c.mu.Unlock()
	if out, ok := c.toRGB[in]; ok {
		c.hits++
		return out
	}
	c.misses++
	out := HSLToRGB(in)
	c.toRGB[in] = out
	return out
}

// Stats returns the current hit/miss counters and entry count.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{
		Hits:    c.hits,
		Misses:  c.misses,
		Entries: len(c.toHSL) + len(c.toRGB),
	}
}

// Clear removes all cached conversions and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.toHSL = make(map[RGB]HSL)
	c.toRGB = make(map[HSL]RGB)
	c.hits, c.misses = 0, 0
	c.mu.Unlock()
}

// Converter performs color conversions, optionally through a Cache.
//
// The zero value converts directly without caching.
type Converter struct {
	cache *Cache
}

// NewConverter returns a Converter backed by cache. A nil cache disables
// memoization.
func NewConverter(cache *Cache) *Converter {
	return &Converter{cache: cache}
}

// Cache returns the backing cache, or nil when memoization is disabled.
func (cv *Converter) Cache() *Cache {
	if cv == nil {
		return nil
	}
	return cv.cache
}

// RGBToHSL converts through the cache when one is configured.
func (cv *Converter) RGBToHSL(c RGB) HSL {
	if cv == nil || cv.cache == nil {
		return RGBToHSL(c)
	}
	return cv.cache.hsl(c)
}

// HSLToRGB converts through the cache when one is configured.
func (cv *Converter) HSLToRGB(c HSL) RGB {
	if cv == nil || cv.cache == nil {
		return HSLToRGB(c)
	}
	return cv.cache.rgb(c)
}

// Stats reports cache statistics. A converter without a cache reports zeros.
func (cv *Converter) Stats() CacheStats {
	if cv == nil || cv.cache == nil {
		return CacheStats{}
	}
	return cv.cache.Stats()
}
