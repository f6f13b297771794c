package engine

import (
	"sync"

	"github.com/chazu/tern/source"
)

// ---------------------------------------------------------------------------
// TypeEngine: interned types
// ---------------------------------------------------------------------------

type typeSlot struct {
	info   TypeInfo
	module source.ModuleID
}

type dedupKey struct {
	module source.ModuleID
	digest uint64
}

// TypeEngine stores every type of a compilation session in one arena.
// Structurally equal types inserted by the same module intern to the same
// handle, found through a digest index built with the context-aware hash
// factory. Deduplication is scoped to the owning module: sharing a handle
// across modules would let ClearModule of one module invalidate another's
// types. Prelude types shared by everyone belong to source.BuiltinModule.
type TypeEngine struct {
	mu       sync.RWMutex
	next     TypeID
	slots    map[TypeID]typeSlot
	byModule map[source.ModuleID][]TypeID
	dedup    map[dedupKey][]TypeID
	builder  HashBuilder
}

// NewTypeEngine creates an empty type engine.
func NewTypeEngine() *TypeEngine {
	return &TypeEngine{
		slots:    make(map[TypeID]typeSlot),
		byModule: make(map[source.ModuleID][]TypeID),
		dedup:    make(map[dedupKey][]TypeID),
		builder:  XXHashBuilder{},
	}
}

// Insert interns ty under its owning module and returns its handle.
// Inserting a type structurally equal to one the module already interned
// returns the existing handle. Insert needs the full context because
// hashing and comparing ty resolves the child handles it contains.
//
// The dedup probe runs outside the write lock; two racing inserts of the
// same structure may both allocate. Duplicate handles still compare equal
// through the context, so this only costs a little arena space.
func (te *TypeEngine) Insert(e *Engines, ty TypeInfo, mod source.ModuleID) TypeID {
	digest := MakeHasher[TypeInfo](te.builder, e)(ty)
	key := dedupKey{module: mod, digest: digest}

	te.mu.RLock()
	candidates := append([]TypeID(nil), te.dedup[key]...)
	te.mu.RUnlock()

	for _, id := range candidates {
		if existing, ok := te.Get(id); ok && existing.Equal(ty, e) {
			return id
		}
	}

	te.mu.Lock()
	defer te.mu.Unlock()

	id := te.next
	te.next++
	te.slots[id] = typeSlot{info: ty, module: mod}
	te.byModule[mod] = append(te.byModule[mod], id)
	te.dedup[key] = append(te.dedup[key], id)
	return id
}

// Get resolves a handle to its structural form, or false if the handle
// was never issued or its module has been cleared.
func (te *TypeEngine) Get(id TypeID) (TypeInfo, bool) {
	te.mu.RLock()
	defer te.mu.RUnlock()
	slot, ok := te.slots[id]
	if !ok {
		return nil, false
	}
	return slot.info, true
}

// Len returns the number of live types.
func (te *TypeEngine) Len() int {
	te.mu.RLock()
	defer te.mu.RUnlock()
	return len(te.slots)
}

// ClearModule evicts every type tagged with mod, including its dedup
// index, and returns the number removed. Idempotent; other modules'
// entries are untouched.
func (te *TypeEngine) ClearModule(mod source.ModuleID) int {
	te.mu.Lock()
	defer te.mu.Unlock()

	ids := te.byModule[mod]
	for _, id := range ids {
		delete(te.slots, id)
	}
	delete(te.byModule, mod)
	for key := range te.dedup {
		if key.module == mod {
			delete(te.dedup, key)
		}
	}
	return len(ids)
}
