// Package source holds the lightweight value types shared by every Tern
// interning engine: source and module identifiers, positions and spans,
// and interned identifiers.
package source

// Position represents a source location.
type Position struct {
	Offset int // byte offset
	Line   int // 1-based line number
	Column int // 1-based column number
}

// Span represents a range in a source file. The zero value is the dummy
// span used for synthesized entities with no source location.
type Span struct {
	Source SourceID
	Start  Position
	End    Position
}

// IsDummy reports whether the span carries no real source location.
func (s Span) IsDummy() bool {
	return s == Span{}
}

// Join returns the smallest span covering both s and other. Joining with a
// dummy span returns the other span unchanged.
func (s Span) Join(other Span) Span {
	if s.IsDummy() {
		return other
	}
	if other.IsDummy() {
		return s
	}
	out := s
	if other.Start.Offset < out.Start.Offset {
		out.Start = other.Start
	}
	if other.End.Offset > out.End.Offset {
		out.End = other.End
	}
	return out
}
