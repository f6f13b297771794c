package engine

import (
	"fmt"
	"io"
)

// TypeID is an opaque handle into the type engine's arena. Handles are
// meaningless on their own: all five contextual protocols resolve through
// the engine first, so two distinct handles denoting structurally equal
// types display, hash, and compare identically.
type TypeID uint32

// Display renders the resolved type. An evicted handle renders as
// "{unknown}".
func (id TypeID) Display(e *Engines) string {
	ti, ok := e.Types().Get(id)
	if !ok {
		return "{unknown}"
	}
	return ti.Display(e)
}

// Debug renders the resolved type's internals alongside the raw handle.
func (id TypeID) Debug(e *Engines) string {
	ti, ok := e.Types().Get(id)
	if !ok {
		return fmt.Sprintf("{unknown %d}", uint32(id))
	}
	return fmt.Sprintf("%s#%d", ti.Debug(e), uint32(id))
}

// Hash mixes the resolved structural form, never the raw handle value. An
// evicted handle falls back to its raw value under a distinct tag.
func (id TypeID) Hash(h io.Writer, e *Engines) {
	ti, ok := e.Types().Get(id)
	if !ok {
		hashByte(h, tagUnresolved)
		hashUint32(h, uint32(id))
		return
	}
	ti.Hash(h, e)
}

// Equal reports structural equality of the resolved types. When neither
// handle resolves, equality falls back to the raw handles so reflexivity
// still holds; a resolvable handle is never equal to an evicted one.
func (id TypeID) Equal(other TypeID, e *Engines) bool {
	a, aok := e.Types().Get(id)
	b, bok := e.Types().Get(other)
	switch {
	case aok && bok:
		return a.Equal(b, e)
	case !aok && !bok:
		return id == other
	default:
		return false
	}
}

// Compare orders by resolved structure. Resolvable handles sort before
// evicted ones; two evicted handles order by raw value.
func (id TypeID) Compare(other TypeID, e *Engines) int {
	a, aok := e.Types().Get(id)
	b, bok := e.Types().Get(other)
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
