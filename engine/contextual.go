package engine

import (
	"io"
	"strings"
)

// ---------------------------------------------------------------------------
// Contextual protocols
//
// Context-aware counterparts of fmt.Stringer, GoString, hashing, Equal,
// and Compare. Each takes the Engines aggregate explicitly so that interned
// handles can be resolved to their structural form before being compared,
// hashed, or rendered. Implementations must uphold:
//
//   - Equal is reflexive, symmetric, and transitive for a fixed context.
//   - Equal(a, b) implies identical Hash output for a and b.
//   - Compare is a total order with Compare(a, b) == 0 iff Equal(a, b).
// ---------------------------------------------------------------------------

// Displayer produces the user-facing rendering of a value, resolving any
// interned handles it holds through e.
type Displayer interface {
	Display(e *Engines) string
}

// Debugger produces the internals rendering of a value. Useful for
// debugging; reached through the %#v verb on a wrapped value.
type Debugger interface {
	Debug(e *Engines) string
}

// Hashable feeds a value's resolved structural form into h. Handles are
// resolved through e before mixing, never hashed by their raw numeric
// value, so distinct handles denoting the same entity hash identically.
// Any hash.Hash satisfies the io.Writer accumulator.
type Hashable interface {
	Hash(h io.Writer, e *Engines)
}

// Equatable reports structural equality after resolving through e.
// Entities without a natural total order implement only this.
type Equatable[T any] interface {
	Equal(other T, e *Engines) bool
}

// Comparable returns a three-way comparison (-1, 0, +1) after resolving
// through e.
type Comparable[T any] interface {
	Compare(other T, e *Engines) int
}

// ---------------------------------------------------------------------------
// Composite lifts
//
// Generic liftings of the protocols over optional values and sequences,
// defined once for every participating entity type. Pointer indirection
// needs no lift of its own: Go promotes value-receiver method sets through
// pointers, so a *T is transparently usable wherever a T is.
//
// An optional value is a *T whose nil state means "absent".
// ---------------------------------------------------------------------------

// optionAbsentTag is the sentinel byte an absent optional contributes to a
// hash. A present optional contributes only its element's hash.
const optionAbsentTag byte = 0x00

// DisplayOption renders a present value and renders nothing when absent.
func DisplayOption[T Displayer](v *T, e *Engines) string {
	if v == nil {
		return ""
	}
	return (*v).Display(e)
}

// DebugOption is DisplayOption for the debug rendering.
func DebugOption[T Debugger](v *T, e *Engines) string {
	if v == nil {
		return ""
	}
	return (*v).Debug(e)
}

// HashOption hashes a present value, or the absent sentinel byte.
func HashOption[T Hashable](v *T, h io.Writer, e *Engines) {
	if v == nil {
		h.Write([]byte{optionAbsentTag})
		return
	}
	(*v).Hash(h, e)
}

// EqualOption reports equality of two optionals: both absent is equal,
// mixed presence is unequal, both present delegates to the elements.
func EqualOption[T Equatable[T]](a, b *T, e *Engines) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return (*a).Equal(*b, e)
	}
}

// CompareOption orders two optionals. A present value sorts strictly
// before an absent one, whatever the value; two absent values are equal.
// This convention is observable in every sorted diagnostic and cache key,
// so it must not be inverted.
func CompareOption[T Comparable[T]](a, b *T, e *Engines) int {
	switch {
	case a != nil && b != nil:
		return (*a).Compare(*b, e)
	case a != nil:
		return -1
	case b != nil:
		return 1
	default:
		return 0
	}
}

// DisplaySlice joins the elements' renderings with ", " in order.
func DisplaySlice[T Displayer](xs []T, e *Engines) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.Display(e)
	}
	return strings.Join(parts, ", ")
}

// DebugSlice joins the elements' debug renderings with ", " in order.
func DebugSlice[T Debugger](xs []T, e *Engines) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.Debug(e)
	}
	return strings.Join(parts, ", ")
}

// HashSlice folds each element's hash contribution into h in order.
func HashSlice[T Hashable](xs []T, h io.Writer, e *Engines) {
	for _, x := range xs {
		x.Hash(h, e)
	}
}

// EqualSlice reports whether two sequences have equal length and pairwise
// equal elements in order.
func EqualSlice[T Equatable[T]](a, b []T, e *Engines) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i], e) {
			return false
		}
	}
	return true
}

// CompareSlice orders two sequences element-wise, returning the first
// non-equal pairwise result. When one is a prefix of the other, the
// shorter sequence sorts first.
func CompareSlice[T Comparable[T]](a, b []T, e *Engines) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := a[i].Compare(b[i], e); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
