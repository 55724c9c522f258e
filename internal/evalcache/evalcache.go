// Package evalcache memoizes engine search results. A player's games revisit
// the same opening positions over and over; caching avoids re-searching them.
package evalcache

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cja000/cga/internal/engine"
)

// DefaultSize is the default number of cached positions.
const DefaultSize = 4096

// Cache is an LRU cache of engine results keyed by position and limits.
type Cache struct {
	entries *lru.Cache[string, *engine.Result]
}

// New creates a cache holding up to size results.
// If size is not positive, DefaultSize is used.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, *engine.Result](size)
	if err != nil {
		return nil, fmt.Errorf("creating LRU: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Key builds the cache key for a position searched under the given limits.
// The FEN should be normalized so transpositions share an entry.
func Key(fen string, limits engine.Limits, multiPV int) string {
	return fen + "|" + limits.Key() + "|pv" + strconv.Itoa(multiPV)
}

// Get returns the cached result for key, if present.
func (c *Cache) Get(key string) (*engine.Result, bool) {
	return c.entries.Get(key)
}

// Add stores a result under key.
func (c *Cache) Add(key string, result *engine.Result) {
	c.entries.Add(key, result)
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.entries.Len()
}
