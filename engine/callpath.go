package engine

import (
	"io"
	"strings"

	"github.com/chazu/tern/source"
)

// CallPath is a possibly-qualified name: the prefixes name the enclosing
// modules, the suffix names the item. An absolute path is anchored at the
// package root rather than the current module.
type CallPath struct {
	Prefixes   []source.Ident
	Suffix     source.Ident
	IsAbsolute bool
}

// CallPathFromIdent builds a relative single-segment path.
func CallPathFromIdent(suffix source.Ident) CallPath {
	return CallPath{Suffix: suffix}
}

// Display renders the path with "::" separators, e.g. "std::vec::Vec".
func (p CallPath) Display(*Engines) string {
	if len(p.Prefixes) == 0 {
		return p.Suffix.Name
	}
	return joinIdents(p.Prefixes, "::") + "::" + p.Suffix.Name
}

func (p CallPath) Debug(e *Engines) string {
	s := p.Display(e)
	if p.IsAbsolute {
		return "::" + s
	}
	return s
}

func (p CallPath) Hash(h io.Writer, _ *Engines) {
	hashByte(h, tagCallPath)
	hashUint32(h, uint32(len(p.Prefixes)))
	for _, pre := range p.Prefixes {
		hashString(h, pre.Name)
	}
	hashString(h, p.Suffix.Name)
	hashBool(h, p.IsAbsolute)
}

// Equal compares segment names; spans are ignored.
func (p CallPath) Equal(other CallPath, _ *Engines) bool {
	return p.IsAbsolute == other.IsAbsolute &&
		p.Suffix.Equal(other.Suffix) &&
		identSliceEqual(p.Prefixes, other.Prefixes)
}

// Compare orders paths segment-wise: prefixes, then suffix, with relative
// paths before absolute ones as the final tie-break.
func (p CallPath) Compare(other CallPath, _ *Engines) int {
	if c := identSliceCompare(p.Prefixes, other.Prefixes); c != 0 {
		return c
	}
	if c := p.Suffix.Compare(other.Suffix); c != 0 {
		return c
	}
	return compareBool(p.IsAbsolute, other.IsAbsolute)
}

// Ident slices carry no interned handles, so their helpers skip the
// context-threaded lifts.

func joinIdents(xs []source.Ident, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.Name
	}
	return strings.Join(parts, sep)
}

func identSliceEqual(a, b []source.Ident) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func identSliceCompare(a, b []source.Ident) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
