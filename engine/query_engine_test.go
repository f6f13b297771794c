package engine

import (
	"testing"
)

func TestQueryEngineInsertGet(t *testing.T) {
	qe := NewQueryEngine()

	entry := &ModuleCacheEntry{
		Path:        "src/main.tn",
		ContentHash: 0xDEADBEEF,
		Modified:    1700000000,
	}
	qe.Insert(entry)

	got, ok := qe.Get("src/main.tn")
	if !ok {
		t.Fatal("inserted entry should be found")
	}
	if got.ContentHash != entry.ContentHash {
		t.Errorf("ContentHash = %x, want %x", got.ContentHash, entry.ContentHash)
	}
	if _, ok := qe.Get("src/other.tn"); ok {
		t.Error("unknown path should not be found")
	}

	// Replacement, not accumulation.
	qe.Insert(&ModuleCacheEntry{Path: "src/main.tn", ContentHash: 1})
	if qe.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after replacement", qe.Len())
	}
	got, _ = qe.Get("src/main.tn")
	if got.ContentHash != 1 {
		t.Error("replacement did not take effect")
	}
}

func TestQueryEngineRangeOrder(t *testing.T) {
	qe := NewQueryEngine()
	for _, p := range []string{"src/c.tn", "src/a.tn", "src/b.tn"} {
		qe.Insert(&ModuleCacheEntry{Path: p})
	}

	var got []string
	qe.Range(func(entry *ModuleCacheEntry) bool {
		got = append(got, entry.Path)
		return true
	})
	want := []string{"src/a.tn", "src/b.tn", "src/c.tn"}
	if len(got) != len(want) {
		t.Fatalf("ranged %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestQueryEngineRemove(t *testing.T) {
	qe := NewQueryEngine()
	qe.Insert(&ModuleCacheEntry{Path: "src/a.tn"})
	qe.Remove("src/a.tn")
	if _, ok := qe.Get("src/a.tn"); ok {
		t.Error("removed entry should not be found")
	}
	qe.Remove("src/never.tn") // no-op
}

func TestSnapshotRoundTrip(t *testing.T) {
	qe := NewQueryEngine()
	qe.Insert(&ModuleCacheEntry{
		Path:         "src/main.tn",
		ContentHash:  42,
		Modified:     1700000000,
		Dependencies: []string{"src/util.tn"},
	})
	qe.Insert(&ModuleCacheEntry{Path: "src/util.tn", ContentHash: 7})

	data, err := qe.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	restored := NewQueryEngine()
	// Restore merges: pre-existing entries for other paths survive.
	restored.Insert(&ModuleCacheEntry{Path: "src/extra.tn", ContentHash: 9})
	if err := restored.Restore(data); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.Len() != 3 {
		t.Errorf("Len() = %d, want 3", restored.Len())
	}
	got, ok := restored.Get("src/main.tn")
	if !ok {
		t.Fatal("restored entry missing")
	}
	if got.ContentHash != 42 || len(got.Dependencies) != 1 || got.Dependencies[0] != "src/util.tn" {
		t.Errorf("restored entry corrupted: %+v", got)
	}
}

func TestSnapshotDeterministic(t *testing.T) {
	build := func() *QueryEngine {
		qe := NewQueryEngine()
		qe.Insert(&ModuleCacheEntry{Path: "src/b.tn", ContentHash: 2})
		qe.Insert(&ModuleCacheEntry{Path: "src/a.tn", ContentHash: 1})
		return qe
	}
	// Same cache contents, different insertion order in the second build.
	other := NewQueryEngine()
	other.Insert(&ModuleCacheEntry{Path: "src/a.tn", ContentHash: 1})
	other.Insert(&ModuleCacheEntry{Path: "src/b.tn", ContentHash: 2})

	d1, err := build().Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	d2, err := other.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if string(d1) != string(d2) {
		t.Error("snapshots of identical caches should be byte-identical")
	}
}

func TestRestoreRejectsUnknownVersion(t *testing.T) {
	bad, err := cborEncMode.Marshal(&querySnapshot{Version: 99})
	if err != nil {
		t.Fatal(err)
	}
	qe := NewQueryEngine()
	if err := qe.Restore(bad); err == nil {
		t.Error("unknown snapshot version should be rejected")
	}
}
