// Package engine implements the shared interning core of the Tern
// compiler: the Engines aggregate that owns the type, declaration, query,
// and source engines, and the context-threaded protocols that make
// interned handles comparable, hashable, orderable, and printable.
//
// Interned handles (TypeID, DeclID) are opaque identifiers into arenas
// owned by the engines. Two distinct handles can denote structurally
// identical entities, so raw handle equality is wrong for deduplication,
// caching, and diagnostics. Every comparison, hash, or rendering of an
// entity therefore threads an *Engines through it and resolves handles to
// their structural form first. See contextual.go for the protocol family
// and wrapper.go for the bridge back to context-free code.
package engine

import (
	"github.com/tliron/commonlog"

	"github.com/chazu/tern/source"
)

var log = commonlog.GetLogger("tern.engine")

// ---------------------------------------------------------------------------
// Engines: the composition root for one compilation session
// ---------------------------------------------------------------------------

// Engines aggregates the four interning engines of a compilation session.
// It is created once per session and passed by reference as the context
// argument of every contextual protocol call.
//
// All read paths (resolution, comparison, hashing, rendering) take only
// shared access and are safe to call from concurrent compiler passes.
// ClearModule mutates the type and declaration engines and must be
// serialized against concurrent reads by the caller, e.g. by running
// garbage collection only between compilation phases.
type Engines struct {
	types  *TypeEngine
	decls  *DeclEngine
	query  *QueryEngine
	source *SourceEngine
}

// New creates an empty Engines aggregate with fresh engines.
func New() *Engines {
	return &Engines{
		types:  NewTypeEngine(),
		decls:  NewDeclEngine(),
		query:  NewQueryEngine(),
		source: NewSourceEngine(),
	}
}

// Types returns the type engine.
func (e *Engines) Types() *TypeEngine { return e.types }

// Decls returns the declaration engine.
func (e *Engines) Decls() *DeclEngine { return e.decls }

// Query returns the query engine.
func (e *Engines) Query() *QueryEngine { return e.query }

// Source returns the source engine.
func (e *Engines) Source() *SourceEngine { return e.source }

// ClearModule removes every type and declaration entry tagged with mod.
// Entries owned by other modules are untouched. Clearing a module with no
// entries is a no-op, so repeated calls are safe. This is the
// memory-bounding hook for incremental compilation: when a module is
// recompiled or dropped, its stale interned entries are evicted here.
func (e *Engines) ClearModule(mod source.ModuleID) {
	nt := e.types.ClearModule(mod)
	nd := e.decls.ClearModule(mod)
	if nt > 0 || nd > 0 {
		log.Debugf("cleared module %d: evicted %d types, %d decls", mod, nt, nd)
	}
}
