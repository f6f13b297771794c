package engine

import (
	"fmt"
	"io"
	"sync"

	"github.com/chazu/tern/source"
)

// ---------------------------------------------------------------------------
// DeclEngine: interned declarations
// ---------------------------------------------------------------------------

// DeclID is an opaque handle into the declaration engine's arena. Like
// TypeID, all contextual protocols resolve through the engine first.
type DeclID uint32

func (id DeclID) Display(e *Engines) string {
	d, ok := e.Decls().Get(id)
	if !ok {
		return "{unknown decl}"
	}
	return d.Display(e)
}

func (id DeclID) Debug(e *Engines) string {
	d, ok := e.Decls().Get(id)
	if !ok {
		return fmt.Sprintf("{unknown decl %d}", uint32(id))
	}
	return fmt.Sprintf("%s#%d", d.Debug(e), uint32(id))
}

func (id DeclID) Hash(h io.Writer, e *Engines) {
	d, ok := e.Decls().Get(id)
	if !ok {
		hashByte(h, tagUnresolved)
		hashUint32(h, uint32(id))
		return
	}
	d.Hash(h, e)
}

// Equal reports structural equality of the resolved declarations; two
// distinct handles to structurally identical declarations are equal. The
// evicted-handle fallback mirrors TypeID.Equal.
func (id DeclID) Equal(other DeclID, e *Engines) bool {
	a, aok := e.Decls().Get(id)
	b, bok := e.Decls().Get(other)
	switch {
	case aok && bok:
		return a.Equal(b, e)
	case !aok && !bok:
		return id == other
	default:
		return false
	}
}

func (id DeclID) Compare(other DeclID, e *Engines) int {
	a, aok := e.Decls().Get(id)
	b, bok := e.Decls().Get(other)
	switch {
	case aok && bok:
		return a.Compare(b, e)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return compareInt(int(id), int(other))
	}
}

// DeclRef pairs a declaration handle with the name it was referenced by.
// This is what typed AST nodes hold instead of a bare DeclID, so
// diagnostics can print the reference name without resolving.
type DeclRef struct {
	Name source.Ident
	ID   DeclID
}

func (r DeclRef) Display(*Engines) string {
	return r.Name.Name
}

func (r DeclRef) Debug(e *Engines) string {
	return fmt.Sprintf("%s -> %s", r.Name.Name, r.ID.Debug(e))
}

func (r DeclRef) Hash(h io.Writer, e *Engines) {
	hashByte(h, tagDeclRef)
	hashString(h, r.Name.Name)
	r.ID.Hash(h, e)
}

func (r DeclRef) Equal(other DeclRef, e *Engines) bool {
	return r.Name.Equal(other.Name) && r.ID.Equal(other.ID, e)
}

func (r DeclRef) Compare(other DeclRef, e *Engines) int {
	if c := r.Name.Compare(other.Name); c != 0 {
		return c
	}
	return r.ID.Compare(other.ID, e)
}

type declSlot struct {
	decl   Decl
	module source.ModuleID
}

// DeclEngine stores every declaration of a compilation session in one
// arena, tagged by owning module for eviction. Reads take the shared lock,
// so concurrent passes may resolve freely.
type DeclEngine struct {
	mu       sync.RWMutex
	next     DeclID
	slots    map[DeclID]declSlot
	byModule map[source.ModuleID][]DeclID
}

// NewDeclEngine creates an empty declaration engine.
func NewDeclEngine() *DeclEngine {
	return &DeclEngine{
		slots:    make(map[DeclID]declSlot),
		byModule: make(map[source.ModuleID][]DeclID),
	}
}

// Insert registers a declaration under its owning module and returns a
// reference carrying the declared name.
func (de *DeclEngine) Insert(decl Decl, mod source.ModuleID) DeclRef {
	de.mu.Lock()
	defer de.mu.Unlock()

	id := de.next
	de.next++
	de.slots[id] = declSlot{decl: decl, module: mod}
	de.byModule[mod] = append(de.byModule[mod], id)
	return DeclRef{Name: decl.DeclName(), ID: id}
}

// Get resolves a handle to its declaration, or false if the handle was
// never issued or its module has been cleared.
func (de *DeclEngine) Get(id DeclID) (Decl, bool) {
	de.mu.RLock()
	defer de.mu.RUnlock()
	slot, ok := de.slots[id]
	if !ok {
		return nil, false
	}
	return slot.decl, true
}

// Len returns the number of live declarations.
func (de *DeclEngine) Len() int {
	de.mu.RLock()
	defer de.mu.RUnlock()
	return len(de.slots)
}

// ClearModule evicts every declaration tagged with mod and returns the
// number removed. Other modules' entries are untouched; clearing an
// unknown module is a no-op.
func (de *DeclEngine) ClearModule(mod source.ModuleID) int {
	de.mu.Lock()
	defer de.mu.Unlock()

	ids := de.byModule[mod]
	for _, id := range ids {
		delete(de.slots, id)
	}
	delete(de.byModule, mod)
	return len(ids)
}
