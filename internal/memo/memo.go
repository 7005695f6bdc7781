// Package memo provides a small soft-limited memoization table.
//
// Masks for the same hole layout are requested every frame while a window
// rests over embedded content. A Table keeps the values for recent layouts
// so they are computed once.
package memo

import (
	"slices"
	"sync"
)

// Table memoizes values by key and forgets the least recently used keys
// once it grows past its soft limit.
//
// Table is safe for concurrent use and must not be copied after creation.
type Table[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    int64
}

type entry[V any] struct {
	value V
	atime int64
}

// New creates a table with the given soft limit. A limit of 0 or less means
// unlimited.
func New[K comparable, V any](limit int) *Table[K, V] {
	return &Table[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// Get returns the value for key, computing and storing it with compute on a
// miss. compute runs under the table lock and must not use the table.
func (t *Table[K, V]) Get(key K, compute func(K) V) V {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.tick++
	if e, ok := t.entries[key]; ok {
		e.atime = t.tick
		return e.value
	}

	v := compute(key)
	t.entries[key] = &entry[V]{value: v, atime: t.tick}
	if t.limit > 0 && len(t.entries) > t.limit {
		t.evict()
	}
	return v
}

// Len returns the number of memoized keys.
func (t *Table[K, V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Reset forgets every key.
func (t *Table[K, V]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.entries)
	t.tick = 0
}

// evict drops the oldest quarter of the table. Caller must hold t.mu.
func (t *Table[K, V]) evict() {
	keep := max(t.limit*3/4, 1)
	drop := len(t.entries) - keep
	if drop <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(t.entries))
	for k, e := range t.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int { return int(a.atime - b.atime) })
	for _, a := range all[:drop] {
		delete(t.entries, a.key)
	}
}
