package engine

import (
	"sync"

	"github.com/chazu/tern/source"
)

// ---------------------------------------------------------------------------
// SourceEngine: interned source paths and module registry
// ---------------------------------------------------------------------------

// SourceEngine interns source file paths to SourceIDs and records which
// module each file belongs to. It also mints ModuleIDs for the session.
// Source entries are not evicted by ClearModule: spans referring to a
// retired module's files must keep rendering in diagnostics.
type SourceEngine struct {
	mu         sync.RWMutex
	byPath     map[string]source.SourceID
	paths      []string          // SourceID -> path
	modules    []source.ModuleID // SourceID -> owning module
	nextModule source.ModuleID
}

// NewSourceEngine creates an empty source engine.
func NewSourceEngine() *SourceEngine {
	return &SourceEngine{
		byPath:     make(map[string]source.SourceID),
		nextModule: source.BuiltinModule + 1,
	}
}

// NewModule mints a fresh module identifier for the session.
func (se *SourceEngine) NewModule() source.ModuleID {
	se.mu.Lock()
	defer se.mu.Unlock()
	id := se.nextModule
	se.nextModule++
	return id
}

// AddSource interns a source file path under its owning module. A path
// already interned keeps its id; re-adding reassigns the owning module,
// which is what recompiling a moved file needs.
func (se *SourceEngine) AddSource(path string, mod source.ModuleID) source.SourceID {
	// Fast path: read-only lookup.
	se.mu.RLock()
	if id, ok := se.byPath[path]; ok && se.modules[id] == mod {
		se.mu.RUnlock()
		return id
	}
	se.mu.RUnlock()

	se.mu.Lock()
	defer se.mu.Unlock()

	// Double-check after acquiring the write lock.
	if id, ok := se.byPath[path]; ok {
		se.modules[id] = mod
		return id
	}

	id := source.SourceID(len(se.paths))
	se.byPath[path] = id
	se.paths = append(se.paths, path)
	se.modules = append(se.modules, mod)
	return id
}

// Path returns the file path for an interned source id.
func (se *SourceEngine) Path(id source.SourceID) (string, bool) {
	se.mu.RLock()
	defer se.mu.RUnlock()
	if int(id) >= len(se.paths) {
		return "", false
	}
	return se.paths[id], true
}

// Module returns the owning module of an interned source id.
func (se *SourceEngine) Module(id source.SourceID) (source.ModuleID, bool) {
	se.mu.RLock()
	defer se.mu.RUnlock()
	if int(id) >= len(se.modules) {
		return 0, false
	}
	return se.modules[id], true
}

// Lookup returns the id for an already-interned path.
func (se *SourceEngine) Lookup(path string) (source.SourceID, bool) {
	se.mu.RLock()
	defer se.mu.RUnlock()
	id, ok := se.byPath[path]
	return id, ok
}

// Len returns the number of interned source files.
func (se *SourceEngine) Len() int {
	se.mu.RLock()
	defer se.mu.RUnlock()
	return len(se.paths)
}
