package source

import "strings"

// Ident is a name attached to the span where it was written. Identity is
// the name alone: two idents spelled the same are the same ident no matter
// where they appear.
type Ident struct {
	Name string
	Span Span
}

// NewIdent creates an ident located at span.
func NewIdent(name string, span Span) Ident {
	return Ident{Name: name, Span: span}
}

// NewIdentNoSpan creates a synthesized ident with a dummy span.
func NewIdentNoSpan(name string) Ident {
	return Ident{Name: name}
}

func (i Ident) String() string {
	return i.Name
}

// Equal reports whether two idents carry the same name. Spans are ignored.
func (i Ident) Equal(other Ident) bool {
	return i.Name == other.Name
}

// Compare orders idents lexicographically by name. Spans are ignored.
func (i Ident) Compare(other Ident) int {
	return strings.Compare(i.Name, other.Name)
}
