package engine

import (
	"fmt"
	"io"
)

// ---------------------------------------------------------------------------
// WithEngines: the bridge back to context-free code
// ---------------------------------------------------------------------------

// WithEngines pairs a value with the context needed to resolve it. The
// pairing implements the ordinary context-free contracts (fmt.Stringer,
// fmt.GoStringer, Equal, Compare, hashing) by forwarding to the contextual
// protocols, so any entity graph can be handed to plain formatters, sorted
// with slices.SortFunc, or keyed by digest in an ordinary map.
//
// A wrapper is ephemeral: it borrows the context and must not outlive the
// Engines it was built from. It is cheap to copy whenever the wrapped
// value is.
type WithEngines[T any] struct {
	Thing   T
	Engines *Engines
}

// Wrap pairs thing with e. It is a free function because Go methods cannot
// introduce type parameters of their own.
func Wrap[T any](thing T, e *Engines) WithEngines[T] {
	return WithEngines[T]{Thing: thing, Engines: e}
}

// String renders the wrapped value through its Displayer implementation,
// falling back to plain %v formatting for types that do not display
// contextually.
func (w WithEngines[T]) String() string {
	if d, ok := any(w.Thing).(Displayer); ok {
		return d.Display(w.Engines)
	}
	return fmt.Sprintf("%v", w.Thing)
}

// GoString renders the wrapped value through its Debugger implementation,
// falling back to plain %#v formatting. Reached via the %#v verb.
func (w WithEngines[T]) GoString() string {
	if d, ok := any(w.Thing).(Debugger); ok {
		return d.Debug(w.Engines)
	}
	return fmt.Sprintf("%#v", w.Thing)
}

// Equal reports contextual equality of the wrapped values, using the
// receiver's context. Panics if T does not implement Equatable, the same
// footing as comparing incomparable values.
func (w WithEngines[T]) Equal(other WithEngines[T]) bool {
	eq, ok := any(w.Thing).(Equatable[T])
	if !ok {
		panic(fmt.Sprintf("engine: %T does not implement Equatable", w.Thing))
	}
	return eq.Equal(other.Thing, w.Engines)
}

// Compare returns the contextual three-way comparison of the wrapped
// values, using the receiver's context. Panics if T does not implement
// Comparable.
func (w WithEngines[T]) Compare(other WithEngines[T]) int {
	cm, ok := any(w.Thing).(Comparable[T])
	if !ok {
		panic(fmt.Sprintf("engine: %T does not implement Comparable", w.Thing))
	}
	return cm.Compare(other.Thing, w.Engines)
}

// HashInto feeds the wrapped value's contextual hash into h. Panics if T
// does not implement Hashable.
func (w WithEngines[T]) HashInto(h io.Writer) {
	hs, ok := any(w.Thing).(Hashable)
	if !ok {
		panic(fmt.Sprintf("engine: %T does not implement Hashable", w.Thing))
	}
	hs.Hash(h, w.Engines)
}
