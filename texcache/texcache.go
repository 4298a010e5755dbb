// Package texcache implements the weak LOD->GPU-texture association: the
// cache must never hold a strong reference that prolongs an LOD's
// lifetime, and a texture is released once its LOD is no longer
// reachable from any costume.
//
// The teacher's own answer to "release a GPU resource when its Go owner
// dies" is runtime.SetFinalizer (sprite_render.go:2235, 2256, 2274, 2292,
// 4902, on Texture_GL and Sff). This package generalizes that idiom with
// the newer stdlib primitives purpose-built for it: weak.Pointer, for the
// non-owning half of the association, and runtime.AddCleanup, which
// (unlike SetFinalizer) composes with multiple cleanups per object and
// doesn't resurrect the object across a GC cycle.
package texcache

import (
	"runtime"
	"sync"
	"weak"
)

// Texture is the minimal GPU-resource handle the cache manages; callers
// supply a Release closure at Put time describing how to free it.
type Texture any

// Cache holds a weak LOD -> Texture association, keyed by LOD identity
// (a *T pointer, compared by the weak package's own identity semantics).
type Cache[K comparable, V Texture] struct {
	mu      sync.Mutex
	entries map[weak.Pointer[K]]entry[V]
}

type entry[V Texture] struct {
	value   V
	release func(V)
}

// New creates an empty cache.
func New[K comparable, V Texture]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[weak.Pointer[K]]entry[V])}
}

// Get returns the texture associated with key, if key is still live and
// has an entry.
func (c *Cache[K, V]) Get(key *K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[weak.Make(key)]
	return e.value, ok
}

// Put associates value with key, registering release to run once key
// becomes unreachable. release must not re-enter the cache.
func (c *Cache[K, V]) Put(key *K, value V, release func(V)) {
	wk := weak.Make(key)
	c.mu.Lock()
	c.entries[wk] = entry[V]{value: value, release: release}
	c.mu.Unlock()

	runtime.AddCleanup(key, func(w weak.Pointer[K]) {
		c.evict(w)
	}, wk)
}

func (c *Cache[K, V]) evict(wk weak.Pointer[K]) {
	c.mu.Lock()
	e, ok := c.entries[wk]
	if ok {
		delete(c.entries, wk)
	}
	c.mu.Unlock()
	if ok && e.release != nil {
		e.release(e.value)
	}
}

// Len reports the number of live entries; intended for tests and
// diagnostics, not the hot path.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
