package engine

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ---------------------------------------------------------------------------
// Query-cache snapshots
//
// Incremental builds persist the module cache between sessions as
// canonical CBOR, so a fresh session can skip recompiling modules whose
// sources are unchanged.
// ---------------------------------------------------------------------------

// SnapshotVersion is the format version written into every snapshot.
// Bump it when ModuleCacheEntry changes incompatibly; Restore rejects
// snapshots from other versions.
const SnapshotVersion byte = 1

type querySnapshot struct {
	Version byte                `cbor:"1,keyasint"`
	Modules []*ModuleCacheEntry `cbor:"2,keyasint"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("engine: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Snapshot serializes the module cache to CBOR bytes. Entries are written
// in path order, so identical caches produce identical bytes.
func (qe *QueryEngine) Snapshot() ([]byte, error) {
	snap := querySnapshot{Version: SnapshotVersion}
	qe.Range(func(entry *ModuleCacheEntry) bool {
		snap.Modules = append(snap.Modules, entry)
		return true
	})
	data, err := cborEncMode.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("engine: marshal query snapshot: %w", err)
	}
	return data, nil
}

// Restore merges a snapshot's entries into the cache. Entries already
// present for the same path are replaced; everything else is kept, so a
// session can restore several snapshots.
func (qe *QueryEngine) Restore(data []byte) error {
	var snap querySnapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("engine: unmarshal query snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("engine: unsupported snapshot version %d", snap.Version)
	}
	for _, entry := range snap.Modules {
		qe.Insert(entry)
	}
	return nil
}
