package engine

import (
	"testing"

	"github.com/chazu/tern/source"
)

func testFunctionDecl(e *Engines, mod source.ModuleID, ret bool) FunctionDecl {
	u64 := e.Types().Insert(e, TypeUint{Bits: 64}, mod)
	d := FunctionDecl{
		Name: source.NewIdentNoSpan("add"),
		Params: []Parameter{
			{Name: source.NewIdentNoSpan("x"), Ty: u64},
			{Name: source.NewIdentNoSpan("y"), Ty: u64},
		},
	}
	if ret {
		d.Return = &u64
	}
	return d
}

func TestDeclEngineInsertGet(t *testing.T) {
	e, mod := newTestEngines()
	ref := e.Decls().Insert(testFunctionDecl(e, mod, true), mod)

	if ref.Name.Name != "add" {
		t.Errorf("ref name = %q, want %q", ref.Name.Name, "add")
	}
	got, ok := e.Decls().Get(ref.ID)
	if !ok {
		t.Fatal("inserted decl should resolve")
	}
	if got.DeclName().Name != "add" {
		t.Errorf("resolved name = %q, want %q", got.DeclName().Name, "add")
	}
	if e.Decls().Len() != 1 {
		t.Errorf("Len() = %d, want 1", e.Decls().Len())
	}
}

func TestDeclRefStructuralEquality(t *testing.T) {
	e, mod1 := newTestEngines()
	mod2 := e.Source().NewModule()

	refA := e.Decls().Insert(testFunctionDecl(e, mod1, true), mod1)
	refB := e.Decls().Insert(testFunctionDecl(e, mod2, true), mod2)

	if refA.ID == refB.ID {
		t.Fatal("separate inserts should issue distinct handles")
	}
	if !refA.Equal(refB, e) {
		t.Error("distinct handles to identical declarations should be equal")
	}
	if refA.Compare(refB, e) != 0 {
		t.Error("equal refs must order equal")
	}
}

func TestFunctionDeclOptionalReturn(t *testing.T) {
	e, mod := newTestEngines()
	withRet := testFunctionDecl(e, mod, true)
	without := testFunctionDecl(e, mod, false)

	if withRet.Equal(without, e) {
		t.Error("present and absent return types should be unequal")
	}
	// Present return sorts before absent.
	if c := withRet.Compare(without, e); c != -1 {
		t.Errorf("Compare(with, without) = %d, want -1", c)
	}
	if c := without.Compare(withRet, e); c != 1 {
		t.Errorf("Compare(without, with) = %d, want 1", c)
	}
}

func TestDeclDisplayRendering(t *testing.T) {
	e, mod := newTestEngines()
	fn := testFunctionDecl(e, mod, true)
	if got, want := fn.Display(e), "fn add(x: u64, y: u64) -> u64"; got != want {
		t.Errorf("Display = %q, want %q", got, want)
	}

	b := e.Types().Insert(e, TypeBool{}, mod)
	st := StructDecl{
		Name:   source.NewIdentNoSpan("Flags"),
		Fields: []StructField{{Name: source.NewIdentNoSpan("on"), Ty: b}},
	}
	if got, want := st.Display(e), "struct Flags { on: bool }"; got != want {
		t.Errorf("Display = %q, want %q", got, want)
	}
}

func TestNominalTypesResolveThroughDecls(t *testing.T) {
	e, mod := newTestEngines()
	b := e.Types().Insert(e, TypeBool{}, mod)
	ref := e.Decls().Insert(StructDecl{
		Name:   source.NewIdentNoSpan("Flags"),
		Fields: []StructField{{Name: source.NewIdentNoSpan("on"), Ty: b}},
	}, mod)

	ty := e.Types().Insert(e, TypeStruct{Decl: ref.ID}, mod)
	if got := ty.Display(e); got != "Flags" {
		t.Errorf("struct type Display = %q, want %q", got, "Flags")
	}
}
