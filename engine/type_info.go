package engine

import (
	"fmt"
	"io"

	"github.com/chazu/tern/source"
)

// ---------------------------------------------------------------------------
// TypeInfo: structural form of an interned type
// ---------------------------------------------------------------------------

// TypeInfo is the structural value a TypeID resolves to. Compound variants
// hold TypeIDs (not nested TypeInfos), so the arena stays flat and every
// comparison resolves children through the context.
type TypeInfo interface {
	Displayer
	Debugger
	Hashable

	// Equal reports structural equality with another type, resolving any
	// handles through e.
	Equal(other TypeInfo, e *Engines) bool

	// Compare gives types a total order: first by variant, then by the
	// variant's own fields. Consistent with Equal.
	Compare(other TypeInfo, e *Engines) int

	// tag is the variant's hash tag; it doubles as the cross-variant rank.
	tag() byte
}

// TypeUnknown is the placeholder for a type not yet inferred.
type TypeUnknown struct{}

// TypeBool is the boolean type.
type TypeBool struct{}

// TypeUint is an unsigned integer type of the given width.
type TypeUint struct {
	Bits uint16
}

// TypeString is the string slice type.
type TypeString struct{}

// TypeTuple is a fixed arity of element types.
type TypeTuple struct {
	Elems []TypeID
}

// TypeArray is a fixed-length array.
type TypeArray struct {
	Elem TypeID
	Len  uint64
}

// TypeAlias names another type. Aliases are structural: two aliases are
// equal when both name and target agree.
type TypeAlias struct {
	Name source.Ident
	Ty   TypeID
}

// TypeStruct is a nominal struct type; its shape lives in the declaration
// engine.
type TypeStruct struct {
	Decl DeclID
}

// TypeEnum is a nominal enum type; its shape lives in the declaration
// engine.
type TypeEnum struct {
	Decl DeclID
}

// TypeCustom is a not-yet-resolved named type with optional type
// arguments.
type TypeCustom struct {
	Path CallPath
	Args []TypeID
}

func (TypeUnknown) tag() byte { return tagTypeUnknown }
func (TypeBool) tag() byte    { return tagTypeBool }
func (TypeUint) tag() byte    { return tagTypeUint }
func (TypeString) tag() byte  { return tagTypeString }
func (TypeTuple) tag() byte   { return tagTypeTuple }
func (TypeArray) tag() byte   { return tagTypeArray }
func (TypeAlias) tag() byte   { return tagTypeAlias }
func (TypeStruct) tag() byte  { return tagTypeStruct }
func (TypeEnum) tag() byte    { return tagTypeEnum }
func (TypeCustom) tag() byte  { return tagTypeCustom }

// compareTypeTags orders across variants; within a variant the caller
// compares fields.
func compareTypeTags(a, b TypeInfo) int {
	return compareInt(int(a.tag()), int(b.tag()))
}

// --- TypeUnknown ---

func (TypeUnknown) Display(*Engines) string { return "{unknown}" }
func (TypeUnknown) Debug(*Engines) string   { return "unknown" }

func (t TypeUnknown) Hash(h io.Writer, _ *Engines) {
	hashByte(h, t.tag())
}

func (TypeUnknown) Equal(other TypeInfo, _ *Engines) bool {
	_, ok := other.(TypeUnknown)
	return ok
}

func (t TypeUnknown) Compare(other TypeInfo, _ *Engines) int {
	return compareTypeTags(t, other)
}

// --- TypeBool ---

func (TypeBool) Display(*Engines) string { return "bool" }
func (TypeBool) Debug(*Engines) string   { return "bool" }

func (t TypeBool) Hash(h io.Writer, _ *Engines) {
	hashByte(h, t.tag())
}

func (TypeBool) Equal(other TypeInfo, _ *Engines) bool {
	_, ok := other.(TypeBool)
	return ok
}

func (t TypeBool) Compare(other TypeInfo, _ *Engines) int {
	return compareTypeTags(t, other)
}

// --- TypeUint ---

func (t TypeUint) Display(*Engines) string { return fmt.Sprintf("u%d", t.Bits) }
func (t TypeUint) Debug(*Engines) string   { return fmt.Sprintf("u%d", t.Bits) }

func (t TypeUint) Hash(h io.Writer, _ *Engines) {
	hashByte(h, t.tag())
	hashUint16(h, t.Bits)
}

func (t TypeUint) Equal(other TypeInfo, _ *Engines) bool {
	o, ok := other.(TypeUint)
	return ok && t.Bits == o.Bits
}

func (t TypeUint) Compare(other TypeInfo, _ *Engines) int {
	o, ok := other.(TypeUint)
	if !ok {
		return compareTypeTags(t, other)
	}
	return compareInt(int(t.Bits), int(o.Bits))
}

// --- TypeString ---

func (TypeString) Display(*Engines) string { return "str" }
func (TypeString) Debug(*Engines) string   { return "str" }

func (t TypeString) Hash(h io.Writer, _ *Engines) {
	hashByte(h, t.tag())
}

func (TypeString) Equal(other TypeInfo, _ *Engines) bool {
	_, ok := other.(TypeString)
	return ok
}

func (t TypeString) Compare(other TypeInfo, _ *Engines) int {
	return compareTypeTags(t, other)
}

// --- TypeTuple ---

func (t TypeTuple) Display(e *Engines) string {
	return "(" + DisplaySlice(t.Elems, e) + ")"
}

func (t TypeTuple) Debug(e *Engines) string {
	return "(" + DebugSlice(t.Elems, e) + ")"
}

func (t TypeTuple) Hash(h io.Writer, e *Engines) {
	hashByte(h, t.tag())
	hashUint32(h, uint32(len(t.Elems)))
	HashSlice(t.Elems, h, e)
}

func (t TypeTuple) Equal(other TypeInfo, e *Engines) bool {
	o, ok := other.(TypeTuple)
	return ok && EqualSlice(t.Elems, o.Elems, e)
}

func (t TypeTuple) Compare(other TypeInfo, e *Engines) int {
	o, ok := other.(TypeTuple)
	if !ok {
		return compareTypeTags(t, other)
	}
	return CompareSlice(t.Elems, o.Elems, e)
}

// --- TypeArray ---

func (t TypeArray) Display(e *Engines) string {
	return fmt.Sprintf("[%s; %d]", t.Elem.Display(e), t.Len)
}

func (t TypeArray) Debug(e *Engines) string {
	return fmt.Sprintf("[%s; %d]", t.Elem.Debug(e), t.Len)
}

func (t TypeArray) Hash(h io.Writer, e *Engines) {
	hashByte(h, t.tag())
	hashUint64(h, t.Len)
	t.Elem.Hash(h, e)
}

func (t TypeArray) Equal(other TypeInfo, e *Engines) bool {
	o, ok := other.(TypeArray)
	return ok && t.Len == o.Len && t.Elem.Equal(o.Elem, e)
}

func (t TypeArray) Compare(other TypeInfo, e *Engines) int {
	o, ok := other.(TypeArray)
	if !ok {
		return compareTypeTags(t, other)
	}
	if c := t.Elem.Compare(o.Elem, e); c != 0 {
		return c
	}
	return compareUint64(t.Len, o.Len)
}

// --- TypeAlias ---

func (t TypeAlias) Display(*Engines) string {
	return t.Name.Name
}

func (t TypeAlias) Debug(e *Engines) string {
	return fmt.Sprintf("%s = %s", t.Name.Name, t.Ty.Debug(e))
}

func (t TypeAlias) Hash(h io.Writer, e *Engines) {
	hashByte(h, t.tag())
	hashString(h, t.Name.Name)
	t.Ty.Hash(h, e)
}

func (t TypeAlias) Equal(other TypeInfo, e *Engines) bool {
	o, ok := other.(TypeAlias)
	return ok && t.Name.Equal(o.Name) && t.Ty.Equal(o.Ty, e)
}

func (t TypeAlias) Compare(other TypeInfo, e *Engines) int {
	o, ok := other.(TypeAlias)
	if !ok {
		return compareTypeTags(t, other)
	}
	if c := t.Name.Compare(o.Name); c != 0 {
		return c
	}
	return t.Ty.Compare(o.Ty, e)
}

// --- TypeStruct ---

func (t TypeStruct) Display(e *Engines) string {
	if d, ok := e.Decls().Get(t.Decl); ok {
		return d.DeclName().Name
	}
	return "{unknown struct}"
}

func (t TypeStruct) Debug(e *Engines) string {
	if d, ok := e.Decls().Get(t.Decl); ok {
		return d.Debug(e)
	}
	return fmt.Sprintf("{unknown struct decl %d}", uint32(t.Decl))
}

func (t TypeStruct) Hash(h io.Writer, e *Engines) {
	hashByte(h, t.tag())
	t.Decl.Hash(h, e)
}

func (t TypeStruct) Equal(other TypeInfo, e *Engines) bool {
	o, ok := other.(TypeStruct)
	return ok && t.Decl.Equal(o.Decl, e)
}

func (t TypeStruct) Compare(other TypeInfo, e *Engines) int {
	o, ok := other.(TypeStruct)
	if !ok {
		return compareTypeTags(t, other)
	}
	return t.Decl.Compare(o.Decl, e)
}

// --- TypeEnum ---

func (t TypeEnum) Display(e *Engines) string {
	if d, ok := e.Decls().Get(t.Decl); ok {
		return d.DeclName().Name
	}
	return "{unknown enum}"
}

func (t TypeEnum) Debug(e *Engines) string {
	if d, ok := e.Decls().Get(t.Decl); ok {
		return d.Debug(e)
	}
	return fmt.Sprintf("{unknown enum decl %d}", uint32(t.Decl))
}

func (t TypeEnum) Hash(h io.Writer, e *Engines) {
	hashByte(h, t.tag())
	t.Decl.Hash(h, e)
}

func (t TypeEnum) Equal(other TypeInfo, e *Engines) bool {
	o, ok := other.(TypeEnum)
	return ok && t.Decl.Equal(o.Decl, e)
}

func (t TypeEnum) Compare(other TypeInfo, e *Engines) int {
	o, ok := other.(TypeEnum)
	if !ok {
		return compareTypeTags(t, other)
	}
	return t.Decl.Compare(o.Decl, e)
}

// --- TypeCustom ---

func (t TypeCustom) Display(e *Engines) string {
	if len(t.Args) == 0 {
		return t.Path.Display(e)
	}
	return t.Path.Display(e) + "<" + DisplaySlice(t.Args, e) + ">"
}

func (t TypeCustom) Debug(e *Engines) string {
	if len(t.Args) == 0 {
		return t.Path.Debug(e)
	}
	return t.Path.Debug(e) + "<" + DebugSlice(t.Args, e) + ">"
}

func (t TypeCustom) Hash(h io.Writer, e *Engines) {
	hashByte(h, t.tag())
	t.Path.Hash(h, e)
	hashUint32(h, uint32(len(t.Args)))
	HashSlice(t.Args, h, e)
}

func (t TypeCustom) Equal(other TypeInfo, e *Engines) bool {
	o, ok := other.(TypeCustom)
	return ok && t.Path.Equal(o.Path, e) && EqualSlice(t.Args, o.Args, e)
}

func (t TypeCustom) Compare(other TypeInfo, e *Engines) int {
	o, ok := other.(TypeCustom)
	if !ok {
		return compareTypeTags(t, other)
	}
	if c := t.Path.Compare(o.Path, e); c != 0 {
		return c
	}
	return CompareSlice(t.Args, o.Args, e)
}
