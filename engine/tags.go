package engine

// ---------------------------------------------------------------------------
// Tag bytes for hash contributions.
//
// Each entity variant leads its hash contribution with a unique tag byte
// so that structurally different shapes cannot collide by concatenation.
// The same bytes rank variants for cross-variant ordering. Adding new tags
// is fine; reordering existing ones changes every digest and sort order in
// a session, so keep them stable.
// ---------------------------------------------------------------------------

const (
	// Type variants
	tagTypeUnknown byte = 0x01
	tagTypeBool    byte = 0x02
	tagTypeUint    byte = 0x03
	tagTypeString  byte = 0x04
	tagTypeTuple   byte = 0x05
	tagTypeArray   byte = 0x06
	tagTypeAlias   byte = 0x07
	tagTypeStruct  byte = 0x08
	tagTypeEnum    byte = 0x09
	tagTypeCustom  byte = 0x0A

	// Declaration variants
	tagDeclFunction byte = 0x20
	tagDeclStruct   byte = 0x21
	tagDeclEnum     byte = 0x22
	tagDeclTrait    byte = 0x23
	tagDeclAlias    byte = 0x24

	// Structural pieces
	tagCallPath byte = 0x30
	tagDeclRef  byte = 0x31

	// A handle whose entry has been evicted; hashed by raw id since no
	// structure remains to resolve.
	tagUnresolved byte = 0x7F
)
