package validate

import (
	"regexp"
	"sync"
)

// OnceCache provides thread-safe caching keyed by a comparable value.
// Entries are published fully initialized: concurrent first users of a
// key may each run the factory, but exactly one result is stored and
// every caller sees that one. Factories must therefore be side-effect
// free. A key that is already cached never runs the factory again.
type OnceCache[K comparable, V any] struct {
	cache sync.Map // map[K]*CacheEntry[V]
}

// CacheEntry holds the cached data for a single key. The data is set
// before the entry becomes visible and is immutable afterwards, so reads
// need no locking.
type CacheEntry[V any] struct {
	data V
}

// NewOnceCache creates a new thread-safe cache.
func NewOnceCache[K comparable, V any]() *OnceCache[K, V] {
	return &OnceCache[K, V]{}
}

// GetOrCreate returns the entry for key, creating it with factory if it
// does not exist yet.
func (c *OnceCache[K, V]) GetOrCreate(key K, factory func() V) *CacheEntry[V] {
	if v, ok := c.cache.Load(key); ok {
		return v.(*CacheEntry[V])
	}

	// Initialize before publishing so no reader can observe a zero
	// entry. A losing racer's entry is discarded.
	newEntry := &CacheEntry[V]{data: factory()}

	actual, _ := c.cache.LoadOrStore(key, newEntry)
	return actual.(*CacheEntry[V])
}

// Get retrieves the entry for key if it exists.
func (c *OnceCache[K, V]) Get(key K) (*CacheEntry[V], bool) {
	if v, ok := c.cache.Load(key); ok {
		return v.(*CacheEntry[V]), true
	}
	return nil, false
}

// Delete removes the entry for key.
func (c *OnceCache[K, V]) Delete(key K) {
	c.cache.Delete(key)
}

// Clear removes all entries.
func (c *OnceCache[K, V]) Clear() {
	c.cache = sync.Map{}
}

// GetData returns a copy of the cached data.
func (ce *CacheEntry[V]) GetData() V {
	return ce.data
}

///////////////////////////////////////////////////////////////////////////////
// Compiled pattern cache
///////////////////////////////////////////////////////////////////////////////

// compiledPattern is a compilation result: exactly one of re and err is
// set. Errors are cached too, so a bad pattern is not recompiled on every
// evaluation.
type compiledPattern struct {
	re  *regexp.Regexp
	err error
}

// patternCache caches compiled regular expressions by pattern source.
// All validators share one cache; patterns are immutable so entries never
// need invalidation.
var patternCache = NewOnceCache[string, compiledPattern]()

// compilePattern returns the compiled form of pattern, going through the
// shared cache.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	entry := patternCache.GetOrCreate(pattern, func() compiledPattern {
		re, err := regexp.Compile(pattern)
		return compiledPattern{re: re, err: err}
	})

	cp := entry.GetData()
	return cp.re, cp.err
}
