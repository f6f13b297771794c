package engine

import (
	"fmt"
	"io"

	"github.com/chazu/tern/source"
)

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

// Decl is the structural form of an interned declaration. Field and
// parameter types are TypeIDs resolved through the context, so two
// declarations interned by different modules compare structurally.
type Decl interface {
	Displayer
	Debugger
	Hashable

	// DeclName is the declared name, used by nominal types and DeclRefs.
	DeclName() source.Ident

	// Equal reports structural equality with another declaration.
	Equal(other Decl, e *Engines) bool

	// Compare gives declarations a total order consistent with Equal:
	// first by variant, then by the variant's own fields.
	Compare(other Decl, e *Engines) int

	tag() byte
}

func compareDeclTags(a, b Decl) int {
	return compareInt(int(a.tag()), int(b.tag()))
}

// Parameter is one function parameter.
type Parameter struct {
	Name source.Ident
	Ty   TypeID
}

func (p Parameter) Display(e *Engines) string {
	return fmt.Sprintf("%s: %s", p.Name.Name, p.Ty.Display(e))
}

func (p Parameter) Debug(e *Engines) string {
	return fmt.Sprintf("%s: %s", p.Name.Name, p.Ty.Debug(e))
}

func (p Parameter) Hash(h io.Writer, e *Engines) {
	hashString(h, p.Name.Name)
	p.Ty.Hash(h, e)
}

func (p Parameter) Equal(other Parameter, e *Engines) bool {
	return p.Name.Equal(other.Name) && p.Ty.Equal(other.Ty, e)
}

func (p Parameter) Compare(other Parameter, e *Engines) int {
	if c := p.Name.Compare(other.Name); c != 0 {
		return c
	}
	return p.Ty.Compare(other.Ty, e)
}

// StructField is one named field of a struct declaration.
type StructField struct {
	Name source.Ident
	Ty   TypeID
}

func (f StructField) Display(e *Engines) string {
	return fmt.Sprintf("%s: %s", f.Name.Name, f.Ty.Display(e))
}

func (f StructField) Debug(e *Engines) string {
	return fmt.Sprintf("%s: %s", f.Name.Name, f.Ty.Debug(e))
}

func (f StructField) Hash(h io.Writer, e *Engines) {
	hashString(h, f.Name.Name)
	f.Ty.Hash(h, e)
}

func (f StructField) Equal(other StructField, e *Engines) bool {
	return f.Name.Equal(other.Name) && f.Ty.Equal(other.Ty, e)
}

func (f StructField) Compare(other StructField, e *Engines) int {
	if c := f.Name.Compare(other.Name); c != 0 {
		return c
	}
	return f.Ty.Compare(other.Ty, e)
}

// EnumVariant is one variant of an enum declaration. Tag is the variant's
// discriminant.
type EnumVariant struct {
	Name source.Ident
	Ty   TypeID
	Tag  uint64
}

func (v EnumVariant) Display(e *Engines) string {
	return fmt.Sprintf("%s: %s", v.Name.Name, v.Ty.Display(e))
}

func (v EnumVariant) Debug(e *Engines) string {
	return fmt.Sprintf("%s(%d): %s", v.Name.Name, v.Tag, v.Ty.Debug(e))
}

func (v EnumVariant) Hash(h io.Writer, e *Engines) {
	hashString(h, v.Name.Name)
	hashUint64(h, v.Tag)
	v.Ty.Hash(h, e)
}

func (v EnumVariant) Equal(other EnumVariant, e *Engines) bool {
	return v.Name.Equal(other.Name) && v.Tag == other.Tag && v.Ty.Equal(other.Ty, e)
}

func (v EnumVariant) Compare(other EnumVariant, e *Engines) int {
	if c := v.Name.Compare(other.Name); c != 0 {
		return c
	}
	if c := compareUint64(v.Tag, other.Tag); c != 0 {
		return c
	}
	return v.Ty.Compare(other.Ty, e)
}

// --- FunctionDecl ---

// FunctionDecl declares a function. Return is nil for functions that
// return nothing.
type FunctionDecl struct {
	Name   source.Ident
	Params []Parameter
	Return *TypeID
}

func (d FunctionDecl) DeclName() source.Ident { return d.Name }
func (FunctionDecl) tag() byte                { return tagDeclFunction }

func (d FunctionDecl) Display(e *Engines) string {
	sig := fmt.Sprintf("fn %s(%s)", d.Name.Name, DisplaySlice(d.Params, e))
	if d.Return != nil {
		sig += " -> " + DisplayOption(d.Return, e)
	}
	return sig
}

func (d FunctionDecl) Debug(e *Engines) string {
	sig := fmt.Sprintf("fn %s(%s)", d.Name.Name, DebugSlice(d.Params, e))
	if d.Return != nil {
		sig += " -> " + DebugOption(d.Return, e)
	}
	return sig
}

func (d FunctionDecl) Hash(h io.Writer, e *Engines) {
	hashByte(h, d.tag())
	hashString(h, d.Name.Name)
	hashUint32(h, uint32(len(d.Params)))
	HashSlice(d.Params, h, e)
	HashOption(d.Return, h, e)
}

func (d FunctionDecl) Equal(other Decl, e *Engines) bool {
	o, ok := other.(FunctionDecl)
	return ok &&
		d.Name.Equal(o.Name) &&
		EqualSlice(d.Params, o.Params, e) &&
		EqualOption(d.Return, o.Return, e)
}

func (d FunctionDecl) Compare(other Decl, e *Engines) int {
	o, ok := other.(FunctionDecl)
	if !ok {
		return compareDeclTags(d, other)
	}
	if c := d.Name.Compare(o.Name); c != 0 {
		return c
	}
	if c := CompareSlice(d.Params, o.Params, e); c != 0 {
		return c
	}
	return CompareOption(d.Return, o.Return, e)
}

// --- StructDecl ---

// StructDecl declares a struct and its fields.
type StructDecl struct {
	Name   source.Ident
	Fields []StructField
}

func (d StructDecl) DeclName() source.Ident { return d.Name }
func (StructDecl) tag() byte                { return tagDeclStruct }

func (d StructDecl) Display(e *Engines) string {
	return fmt.Sprintf("struct %s { %s }", d.Name.Name, DisplaySlice(d.Fields, e))
}

func (d StructDecl) Debug(e *Engines) string {
	return fmt.Sprintf("struct %s { %s }", d.Name.Name, DebugSlice(d.Fields, e))
}

func (d StructDecl) Hash(h io.Writer, e *Engines) {
	hashByte(h, d.tag())
	hashString(h, d.Name.Name)
	hashUint32(h, uint32(len(d.Fields)))
	HashSlice(d.Fields, h, e)
}

func (d StructDecl) Equal(other Decl, e *Engines) bool {
	o, ok := other.(StructDecl)
	return ok && d.Name.Equal(o.Name) && EqualSlice(d.Fields, o.Fields, e)
}

func (d StructDecl) Compare(other Decl, e *Engines) int {
	o, ok := other.(StructDecl)
	if !ok {
		return compareDeclTags(d, other)
	}
	if c := d.Name.Compare(o.Name); c != 0 {
		return c
	}
	return CompareSlice(d.Fields, o.Fields, e)
}

// --- EnumDecl ---

// EnumDecl declares an enum and its variants.
type EnumDecl struct {
	Name     source.Ident
	Variants []EnumVariant
}

func (d EnumDecl) DeclName() source.Ident { return d.Name }
func (EnumDecl) tag() byte                { return tagDeclEnum }

func (d EnumDecl) Display(e *Engines) string {
	return fmt.Sprintf("enum %s { %s }", d.Name.Name, DisplaySlice(d.Variants, e))
}

func (d EnumDecl) Debug(e *Engines) string {
	return fmt.Sprintf("enum %s { %s }", d.Name.Name, DebugSlice(d.Variants, e))
}

func (d EnumDecl) Hash(h io.Writer, e *Engines) {
	hashByte(h, d.tag())
	hashString(h, d.Name.Name)
	hashUint32(h, uint32(len(d.Variants)))
	HashSlice(d.Variants, h, e)
}

func (d EnumDecl) Equal(other Decl, e *Engines) bool {
	o, ok := other.(EnumDecl)
	return ok && d.Name.Equal(o.Name) && EqualSlice(d.Variants, o.Variants, e)
}

func (d EnumDecl) Compare(other Decl, e *Engines) int {
	o, ok := other.(EnumDecl)
	if !ok {
		return compareDeclTags(d, other)
	}
	if c := d.Name.Compare(o.Name); c != 0 {
		return c
	}
	return CompareSlice(d.Variants, o.Variants, e)
}

// --- TraitDecl ---

// TraitDecl declares a trait as its name and required method names.
type TraitDecl struct {
	Name    source.Ident
	Methods []source.Ident
}

func (d TraitDecl) DeclName() source.Ident { return d.Name }
func (TraitDecl) tag() byte                { return tagDeclTrait }

func (d TraitDecl) Display(*Engines) string {
	return "trait " + d.Name.Name
}

func (d TraitDecl) Debug(*Engines) string {
	return fmt.Sprintf("trait %s { %s }", d.Name.Name, joinIdents(d.Methods, ", "))
}

func (d TraitDecl) Hash(h io.Writer, _ *Engines) {
	hashByte(h, d.tag())
	hashString(h, d.Name.Name)
	hashUint32(h, uint32(len(d.Methods)))
	for _, m := range d.Methods {
		hashString(h, m.Name)
	}
}

func (d TraitDecl) Equal(other Decl, _ *Engines) bool {
	o, ok := other.(TraitDecl)
	return ok && d.Name.Equal(o.Name) && identSliceEqual(d.Methods, o.Methods)
}

func (d TraitDecl) Compare(other Decl, _ *Engines) int {
	o, ok := other.(TraitDecl)
	if !ok {
		return compareDeclTags(d, other)
	}
	if c := d.Name.Compare(o.Name); c != 0 {
		return c
	}
	return identSliceCompare(d.Methods, o.Methods)
}

// --- AliasDecl ---

// AliasDecl declares a type alias.
type AliasDecl struct {
	Name source.Ident
	Ty   TypeID
}

func (d AliasDecl) DeclName() source.Ident { return d.Name }
func (AliasDecl) tag() byte                { return tagDeclAlias }

func (d AliasDecl) Display(e *Engines) string {
	return fmt.Sprintf("type %s = %s", d.Name.Name, d.Ty.Display(e))
}

func (d AliasDecl) Debug(e *Engines) string {
	return fmt.Sprintf("type %s = %s", d.Name.Name, d.Ty.Debug(e))
}

func (d AliasDecl) Hash(h io.Writer, e *Engines) {
	hashByte(h, d.tag())
	hashString(h, d.Name.Name)
	d.Ty.Hash(h, e)
}

func (d AliasDecl) Equal(other Decl, e *Engines) bool {
	o, ok := other.(AliasDecl)
	return ok && d.Name.Equal(o.Name) && d.Ty.Equal(o.Ty, e)
}

func (d AliasDecl) Compare(other Decl, e *Engines) int {
	o, ok := other.(AliasDecl)
	if !ok {
		return compareDeclTags(d, other)
	}
	if c := d.Name.Compare(o.Name); c != 0 {
		return c
	}
	return d.Ty.Compare(o.Ty, e)
}
