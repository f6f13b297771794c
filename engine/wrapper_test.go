package engine

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestWrapperString(t *testing.T) {
	e, mod := newTestEngines()
	u64 := e.Types().Insert(e, TypeUint{Bits: 64}, mod)
	b := e.Types().Insert(e, TypeBool{}, mod)
	tup := e.Types().Insert(e, TypeTuple{Elems: []TypeID{u64, b}}, mod)

	w := Wrap(tup, e)
	if got := w.String(); got != "(u64, bool)" {
		t.Errorf("String() = %q, want %q", got, "(u64, bool)")
	}
	if got := fmt.Sprintf("%v", w); got != "(u64, bool)" {
		t.Errorf("%%v = %q, want %q", got, "(u64, bool)")
	}
	// Transparency: identical to calling the contextual protocol directly.
	if w.String() != tup.Display(e) {
		t.Error("wrapped rendering differs from direct Display")
	}
}

func TestWrapperGoString(t *testing.T) {
	e, mod := newTestEngines()
	u8 := e.Types().Insert(e, TypeUint{Bits: 8}, mod)

	w := Wrap(u8, e)
	if w.GoString() != u8.Debug(e) {
		t.Error("GoString differs from direct Debug")
	}
	if got := fmt.Sprintf("%#v", w); got != u8.Debug(e) {
		t.Errorf("%%#v = %q, want %q", got, u8.Debug(e))
	}
}

func TestWrapperFallbackFormatting(t *testing.T) {
	e, _ := newTestEngines()
	w := Wrap(42, e)
	if got := w.String(); got != "42" {
		t.Errorf("fallback String() = %q, want %q", got, "42")
	}
}

func TestWrapperEqualCompare(t *testing.T) {
	e, mod1 := newTestEngines()
	mod2 := e.Source().NewModule()

	a := e.Types().Insert(e, TypeString{}, mod1)
	b := e.Types().Insert(e, TypeString{}, mod2)
	c := e.Types().Insert(e, TypeBool{}, mod1)

	if !Wrap(a, e).Equal(Wrap(b, e)) {
		t.Error("distinct handles to identical structure should be equal wrapped")
	}
	if Wrap(a, e).Equal(Wrap(c, e)) {
		t.Error("str and bool should be unequal wrapped")
	}
	if got, want := Wrap(c, e).Compare(Wrap(a, e)), c.Compare(a, e); got != want {
		t.Errorf("wrapped Compare = %d, direct = %d", got, want)
	}
}

func TestWrapperHashInto(t *testing.T) {
	e, mod := newTestEngines()
	u32 := e.Types().Insert(e, TypeUint{Bits: 32}, mod)

	var viaWrapper, direct bytes.Buffer
	Wrap(u32, e).HashInto(&viaWrapper)
	u32.Hash(&direct, e)
	if !bytes.Equal(viaWrapper.Bytes(), direct.Bytes()) {
		t.Error("wrapped hash differs from direct Hash")
	}
}

// Sorting wrapped handles must give one deterministic structural order no
// matter the insertion order of the handles themselves.
func TestWrapperSort(t *testing.T) {
	e, mod := newTestEngines()
	ids := []TypeID{
		e.Types().Insert(e, TypeString{}, mod),
		e.Types().Insert(e, TypeUint{Bits: 16}, mod),
		e.Types().Insert(e, TypeBool{}, mod),
		e.Types().Insert(e, TypeUint{Bits: 8}, mod),
	}

	wrapped := make([]WithEngines[TypeID], len(ids))
	for i, id := range ids {
		wrapped[i] = Wrap(id, e)
	}
	slices.SortFunc(wrapped, WithEngines[TypeID].Compare)

	var got []string
	for _, w := range wrapped {
		got = append(got, w.String())
	}
	want := "bool, u8, u16, str"
	if s := strings.Join(got, ", "); s != want {
		t.Errorf("sorted order = %q, want %q", s, want)
	}
}

func TestWrapperPanicsWithoutProtocol(t *testing.T) {
	e, _ := newTestEngines()
	defer func() {
		if recover() == nil {
			t.Error("Equal on a non-Equatable type should panic")
		}
	}()
	Wrap(1, e).Equal(Wrap(2, e))
}
