package engine

import (
	"encoding/binary"
	"hash"
	"io"

	"github.com/zeebo/xxh3"
)

// ---------------------------------------------------------------------------
// Context-aware hash-function factory
// ---------------------------------------------------------------------------

// HashBuilder produces fresh hash states. Every state built by the same
// builder must mix bytes identically, so digests are stable within one
// compilation session.
type HashBuilder interface {
	NewHash() hash.Hash64
}

// XXHashBuilder builds xxh3 states with a fixed seed.
type XXHashBuilder struct {
	Seed uint64
}

func (b XXHashBuilder) NewHash() hash.Hash64 {
	return xxh3.NewSeed(b.Seed)
}

// MakeHasher builds a pure digest function over contextually-hashable
// keys, closing over a hash-state builder and a context. The result is the
// key-hashing strategy for maps whose keys can only be compared through
// context: keys that are Equal under e always digest identically, and the
// same (key, builder, context) triple always yields the same digest within
// a session.
func MakeHasher[K Hashable](b HashBuilder, e *Engines) func(K) uint64 {
	return func(key K) uint64 {
		h := b.NewHash()
		key.Hash(h, e)
		return h.Sum64()
	}
}

// ---------------------------------------------------------------------------
// Accumulator helpers
//
// Encoding conventions for hash contributions, shared by every entity
// type so structurally distinct values cannot collide by concatenation:
//   - integers: big-endian fixed width
//   - strings: uint32 big-endian length prefix + UTF-8 bytes
//   - variants: a leading tag byte (see tags in type_info.go / decl.go)
// ---------------------------------------------------------------------------

func hashByte(h io.Writer, v byte) {
	h.Write([]byte{v})
}

func hashBool(h io.Writer, v bool) {
	if v {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
}

func hashUint16(h io.Writer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	h.Write(b[:])
}

func hashUint32(h io.Writer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	h.Write(b[:])
}

func hashUint64(h io.Writer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func hashString(h io.Writer, s string) {
	hashUint32(h, uint32(len(s)))
	io.WriteString(h, s)
}
