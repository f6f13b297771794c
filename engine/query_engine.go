package engine

import (
	"sync"

	"github.com/benbjohnson/immutable"
)

// ---------------------------------------------------------------------------
// QueryEngine: memoized per-module compilation results
// ---------------------------------------------------------------------------

// ModuleCacheEntry memoizes one module's last compilation, keyed by its
// root source path. ContentHash fingerprints the module's source text;
// Dependencies lists the root paths of the modules it imports, so a change
// anywhere in the closure invalidates the entry.
type ModuleCacheEntry struct {
	Path         string   `cbor:"1,keyasint"`
	ContentHash  uint64   `cbor:"2,keyasint"`
	Modified     int64    `cbor:"3,keyasint"` // unix seconds of the newest source file
	Dependencies []string `cbor:"4,keyasint,omitempty"`
}

// QueryEngine caches per-module compilation results between queries of one
// session and across sessions via Snapshot/Restore. The cache is an
// immutable sorted map swapped under a mutex: readers grab the current map
// once and iterate a stable snapshot in path order without holding any
// lock.
type QueryEngine struct {
	mu      sync.RWMutex
	modules *immutable.SortedMap // path -> *ModuleCacheEntry
}

// NewQueryEngine creates an empty query engine.
func NewQueryEngine() *QueryEngine {
	return &QueryEngine{
		modules: immutable.NewSortedMap(nil),
	}
}

func (qe *QueryEngine) snapshot() *immutable.SortedMap {
	qe.mu.RLock()
	defer qe.mu.RUnlock()
	return qe.modules
}

// Insert memoizes a module's compilation result, replacing any previous
// entry for the same path.
func (qe *QueryEngine) Insert(entry *ModuleCacheEntry) {
	qe.mu.Lock()
	defer qe.mu.Unlock()
	qe.modules = qe.modules.Set(entry.Path, entry)
}

// Get returns the cached entry for a module root path.
func (qe *QueryEngine) Get(path string) (*ModuleCacheEntry, bool) {
	v, ok := qe.snapshot().Get(path)
	if !ok {
		return nil, false
	}
	return v.(*ModuleCacheEntry), true
}

// Remove drops the cached entry for a module root path.
func (qe *QueryEngine) Remove(path string) {
	qe.mu.Lock()
	defer qe.mu.Unlock()
	qe.modules = qe.modules.Delete(path)
}

// Range iterates cached entries in path order. Iteration stops when f
// returns false. The iteration sees a stable snapshot: concurrent inserts
// do not affect it.
func (qe *QueryEngine) Range(f func(*ModuleCacheEntry) bool) {
	iter := qe.snapshot().Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		if !f(v.(*ModuleCacheEntry)) {
			return
		}
	}
}

// Len returns the number of cached modules.
func (qe *QueryEngine) Len() int {
	return qe.snapshot().Len()
}
