package engine

import "testing"

func TestSourceEngineAddSource(t *testing.T) {
	e, mod := newTestEngines()

	id := e.Source().AddSource("src/main.tn", mod)
	again := e.Source().AddSource("src/main.tn", mod)
	if id != again {
		t.Errorf("re-adding a path issued a new id: %d vs %d", id, again)
	}

	path, ok := e.Source().Path(id)
	if !ok || path != "src/main.tn" {
		t.Errorf("Path(%d) = %q, %v", id, path, ok)
	}
	owner, ok := e.Source().Module(id)
	if !ok || owner != mod {
		t.Errorf("Module(%d) = %d, %v, want %d", id, owner, ok, mod)
	}

	if _, ok := e.Source().Path(9999); ok {
		t.Error("unknown id should not resolve")
	}
	if got, ok := e.Source().Lookup("src/main.tn"); !ok || got != id {
		t.Errorf("Lookup = %d, %v, want %d", got, ok, id)
	}
	if _, ok := e.Source().Lookup("src/never.tn"); ok {
		t.Error("unknown path should not resolve")
	}
}

func TestSourceEngineReassignModule(t *testing.T) {
	e, mod1 := newTestEngines()
	mod2 := e.Source().NewModule()

	id := e.Source().AddSource("src/moved.tn", mod1)
	again := e.Source().AddSource("src/moved.tn", mod2)
	if id != again {
		t.Error("reassignment should keep the interned id")
	}
	if owner, _ := e.Source().Module(id); owner != mod2 {
		t.Errorf("owner = %d, want %d", owner, mod2)
	}
}

func TestNewModuleMintsDistinctIDs(t *testing.T) {
	e, _ := newTestEngines()
	seen := make(map[uint32]bool)
	for i := 0; i < 100; i++ {
		id := uint32(e.Source().NewModule())
		if seen[id] {
			t.Fatalf("module id %d minted twice", id)
		}
		if id == 0 {
			t.Fatal("NewModule must never mint the builtin module")
		}
		seen[id] = true
	}
}
