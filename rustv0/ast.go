package rustv0

import "math/big"

// Symbol is the root of a decoded v0 mangled name: an optional encoding
// version, the mangled path itself, and an optional instantiating-crate
// path appended by the monomorphization machinery.
type Symbol struct {
	Version            *uint64
	Path               Path
	InstantiatingCrate Path
}

// Path is the tagged union of every path production in the grammar.
// Concrete variants are CrateRoot, InherentImpl, TraitImpl,
// TraitDefinition, Nested, and Generic. The interface exists purely to
// give the AST a closed, type-safe sum type; pathNode is unexported so
// no package outside rustv0 can add a seventh variant.
//
// Every constructor always returns a pointer to its variant struct
// (*CrateRoot, *Nested, ...), never a value, because a Path reached via
// a back-reference must be object-identical (spec.md §3, §8) to the
// node originally parsed at that offset: two back-references to the
// same offset compare equal with == precisely because they hold the
// same pointer, not because their fields happen to match.
type Path interface {
	Kind() string
	pathNode()
}

// CrateRoot is the `C` path production: a crate root named by an
// identifier (which carries the crate's disambiguating hash).
type CrateRoot struct {
	Name *Identifier
}

func (*CrateRoot) Kind() string { return "crate-root" }
func (*CrateRoot) pathNode()    {}

// InherentImpl is the `M` path production: an inherent impl block's
// path, disambiguated, wrapping the type the impl is on.
type InherentImpl struct {
	Impl *ImplPath
	Type Type
}

func (*InherentImpl) Kind() string { return "inherent-impl" }
func (*InherentImpl) pathNode()    {}

// TraitImpl is the `X` path production: a trait impl block's path,
// the type it's implemented for, and the trait being implemented.
type TraitImpl struct {
	Impl  *ImplPath
	Type  Type
	Trait Path
}

func (*TraitImpl) Kind() string { return "trait-impl" }
func (*TraitImpl) pathNode()    {}

// TraitDefinition is the `Y` path production, used for paths to trait
// items reached through a generic type parameter rather than a concrete
// impl (e.g. `<T as Trait>::item`).
type TraitDefinition struct {
	Type  Type
	Trait Path
}

func (*TraitDefinition) Kind() string { return "trait-definition" }
func (*TraitDefinition) pathNode()    {}

// Nested is the `N` path production: a namespaced child of a parent
// path, e.g. a module or a value inside a crate or impl.
type Nested struct {
	Namespace byte
	Parent    Path
	Name      *Identifier
}

func (*Nested) Kind() string { return "nested" }
func (*Nested) pathNode()    {}

// Generic is the `I...E` path production: a path instantiated with a
// list of generic arguments.
type Generic struct {
	Base Path
	Args []GenericArg
}

func (*Generic) Kind() string { return "generic" }
func (*Generic) pathNode()    {}

// ImplPath is the disambiguator-then-path pair shared by InherentImpl
// and TraitImpl.
type ImplPath struct {
	Disambiguator uint64
	Path          Path
}

// Identifier is a disambiguated name. Name is either a borrowed slice of
// the original input (the common case) or an owned, punycode-decoded
// Unicode string when the identifier was flagged with the `u` tag.
type Identifier struct {
	Disambiguator uint64
	Name          string
}

// GenericArg is the tagged union of Path::Generic's argument list
// elements: a lifetime index, a type, or a const.
type GenericArg interface {
	Kind() string
	genericArgNode()
}

// LifetimeArg is the `L`-tagged generic argument: a bound lifetime index.
type LifetimeArg struct {
	Index uint64
}

func (*LifetimeArg) Kind() string { return "lifetime" }
func (*LifetimeArg) genericArgNode() {}

// TypeArg wraps a Type used as a generic argument.
type TypeArg struct {
	Type Type
}

func (*TypeArg) Kind() string { return "type" }
func (*TypeArg) genericArgNode() {}

// ConstArg is the `K`-tagged generic argument: a const used as a
// generic argument.
type ConstArg struct {
	Const Const
}

func (*ConstArg) Kind() string { return "const" }
func (*ConstArg) genericArgNode() {}

// Type is the tagged union of every type production in the grammar.
type Type interface {
	Kind() string
	typeNode()
}

// BasicTypeNode wraps one of the 21 single-byte primitive type kinds.
type BasicTypeNode struct {
	Basic BasicType
}

func (*BasicTypeNode) Kind() string { return "basic" }
func (*BasicTypeNode) typeNode()    {}

// NamedType is a type referring to a path, e.g. a struct or enum.
type NamedType struct {
	Path Path
}

func (*NamedType) Kind() string { return "named" }
func (*NamedType) typeNode()    {}

// ArrayType is the `A` type production: a fixed-size array.
type ArrayType struct {
	Elem   Type
	Length Const
}

func (*ArrayType) Kind() string { return "array" }
func (*ArrayType) typeNode()    {}

// SliceType is the `S` type production: an unsized slice.
type SliceType struct {
	Elem Type
}

func (*SliceType) Kind() string { return "slice" }
func (*SliceType) typeNode()    {}

// TupleType is the `T...E` type production.
type TupleType struct {
	Elems []Type
}

func (*TupleType) Kind() string { return "tuple" }
func (*TupleType) typeNode()    {}

// RefType is the `R` type production: a shared reference.
type RefType struct {
	Lifetime uint64
	Elem     Type
}

func (*RefType) Kind() string { return "ref" }
func (*RefType) typeNode()    {}

// RefMutType is the `Q` type production: a mutable reference.
type RefMutType struct {
	Lifetime uint64
	Elem     Type
}

func (*RefMutType) Kind() string { return "ref-mut" }
func (*RefMutType) typeNode()    {}

// PtrConstType is the `P` type production: a raw const pointer.
type PtrConstType struct {
	Elem Type
}

func (*PtrConstType) Kind() string { return "ptr-const" }
func (*PtrConstType) typeNode()    {}

// PtrMutType is the `O` type production: a raw mut pointer.
type PtrMutType struct {
	Elem Type
}

func (*PtrMutType) Kind() string { return "ptr-mut" }
func (*PtrMutType) typeNode()    {}

// FnType is the `F` type production: a function pointer type.
type FnType struct {
	Sig *FnSig
}

func (*FnType) Kind() string { return "fn" }
func (*FnType) typeNode()    {}

// DynTraitType is the `D` type production: a trait object behind a
// lifetime bound.
type DynTraitType struct {
	Bounds   *DynBounds
	Lifetime uint64
}

func (*DynTraitType) Kind() string { return "dyn-trait" }
func (*DynTraitType) typeNode()    {}

// BasicType enumerates the 21 primitive type kinds addressed by a
// single tag byte (spec.md §6).
type BasicType int

const (
	BasicI8 BasicType = iota
	BasicBool
	BasicChar
	BasicF64
	BasicStr
	BasicF32
	BasicU8
	BasicIsize
	BasicUsize
	BasicI32
	BasicU32
	BasicI128
	BasicU128
	BasicI16
	BasicU16
	BasicUnit
	BasicEllipsis
	BasicI64
	BasicU64
	BasicNever
	BasicPlaceholder
)

// FnSig is a function pointer's signature: its higher-ranked lifetime
// binder count, unsafety, optional ABI, argument types, and return type.
type FnSig struct {
	BoundLifetimes uint64
	IsUnsafe       bool
	Abi            Abi
	Arguments      []Type
	Return         Type
}

// Abi is the tagged union of the two ABI productions.
type Abi interface {
	Kind() string
	abiNode()
}

// AbiC is the bare `C` ABI.
type AbiC struct{}

func (*AbiC) Kind() string { return "c" }
func (*AbiC) abiNode()     {}

// AbiNamed is a named (non-`C`) ABI, e.g. `"rust-call"`.
type AbiNamed struct {
	Name string
}

func (*AbiNamed) Kind() string { return "named" }
func (*AbiNamed) abiNode()     {}

// DynBounds is the trait-object bound list behind a `D` type: a binder
// count plus the list of traits making up the object's bounds.
type DynBounds struct {
	BoundLifetimes uint64
	Traits         []*DynTrait
}

// DynTrait is one trait making up a trait object's bounds, plus any
// associated-type bindings fixed by that bound (e.g. `Iterator<Item = T>`).
type DynTrait struct {
	Path     Path
	Bindings []*DynTraitAssocBinding
}

// DynTraitAssocBinding is a single `p`-tagged associated-type binding
// inside a DynTrait.
type DynTraitAssocBinding struct {
	Name string
	Type Type
}

// Const is the tagged union of every const production in the grammar.
type Const interface {
	Kind() string
	constNode()
}

// IntConst holds an integer const of one specific width/signedness,
// identified by Width. Value is a math/big.Int rather than a fixed Go
// integer type because the grammar's widest widths (I128/U128) exceed
// every native Go integer type; math/big is the standard library's own
// answer to "integer wider than 64 bits" and needs no third-party
// bignum package.
type IntConst struct {
	Width IntWidth
	Value *big.Int
}

func (*IntConst) Kind() string { return "int" }
func (*IntConst) constNode()   {}

// IntWidth identifies which of the twelve integer Const variants an
// IntConst represents.
type IntWidth int

const (
	WidthI8 IntWidth = iota
	WidthU8
	WidthI16
	WidthU16
	WidthI32
	WidthU32
	WidthI64
	WidthU64
	WidthI128
	WidthU128
	WidthIsize
	WidthUsize
)

// BoolConst is the `b` const production.
type BoolConst struct {
	Value bool
}

func (*BoolConst) Kind() string { return "bool" }
func (*BoolConst) constNode()   {}

// CharConst is the `c` const production: a validated Unicode scalar
// value.
type CharConst struct {
	Value rune
}

func (*CharConst) Kind() string { return "char" }
func (*CharConst) constNode()   {}

// StrConst is the `e` const production, holding a ConstStr payload.
type StrConst struct {
	Str ConstStr
}

func (*StrConst) Kind() string { return "str" }
func (*StrConst) constNode()   {}

// ConstStr is the raw hex payload of a string const, borrowed verbatim
// from the input. Its length is always even (two hex digits per byte);
// decoding the hex into bytes is left to the caller.
type ConstStr struct {
	Hex string
}

// RefConst is the `R` const production.
type RefConst struct {
	Elem Const
}

func (*RefConst) Kind() string { return "ref" }
func (*RefConst) constNode()   {}

// RefMutConst is the `Q` const production.
type RefMutConst struct {
	Elem Const
}

func (*RefMutConst) Kind() string { return "ref-mut" }
func (*RefMutConst) constNode()   {}

// ArrayConst is the `A...E` const production.
type ArrayConst struct {
	Elems []Const
}

func (*ArrayConst) Kind() string { return "array" }
func (*ArrayConst) constNode()   {}

// TupleConst is the `T...E` const production.
type TupleConst struct {
	Elems []Const
}

func (*TupleConst) Kind() string { return "tuple" }
func (*TupleConst) constNode()   {}

// NamedStructConst is the `V` const production: a struct-valued const,
// named by a path, with its fields as ConstFields.
type NamedStructConst struct {
	Path   Path
	Fields ConstFields
}

func (*NamedStructConst) Kind() string { return "named-struct" }
func (*NamedStructConst) constNode()   {}

// PlaceholderConst is the `p` const production: a wildcard const used in
// abbreviated signatures. It carries no payload.
type PlaceholderConst struct{}

func (*PlaceholderConst) Kind() string { return "placeholder" }
func (*PlaceholderConst) constNode()   {}

// ConstFields is the tagged union of a NamedStructConst's field list
// shapes: Unit, Tuple, or Struct.
type ConstFields interface {
	Kind() string
	constFieldsNode()
}

// UnitFields is the `U` const-fields production: a unit struct, no
// fields.
type UnitFields struct{}

func (*UnitFields) Kind() string { return "unit" }
func (*UnitFields) constFieldsNode() {}

// TupleFields is the `T...E` const-fields production: positional
// fields.
type TupleFields struct {
	Elems []Const
}

func (*TupleFields) Kind() string { return "tuple" }
func (*TupleFields) constFieldsNode() {}

// StructFields is the `S...E` const-fields production: named fields.
type StructFields struct {
	Fields []StructField
}

func (*StructFields) Kind() string { return "struct" }
func (*StructFields) constFieldsNode() {}

// StructField is one (name, value) pair of a StructFields list.
type StructField struct {
	Name  *Identifier
	Value Const
}
