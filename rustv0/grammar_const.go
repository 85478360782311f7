package rustv0

import "math/big"

// grammar_const.go implements the Const and ConstFields productions of
// spec.md §4.4, grounded on original_source/.../mod.rs's parse_const
// and parse_const_fields.

var bigOne = big.NewInt(1)

// constIntKind pairs the width/signedness parseConstInt needs with the
// IntWidth tag the resulting IntConst should carry, one entry per
// integer tag byte (spec.md §6).
type constIntKind struct {
	width  int
	signed bool
	result IntWidth
}

var constIntByte = map[byte]constIntKind{
	'a': {8, true, WidthI8},
	'h': {8, false, WidthU8},
	's': {16, true, WidthI16},
	't': {16, false, WidthU16},
	'l': {32, true, WidthI32},
	'm': {32, false, WidthU32},
	'x': {64, true, WidthI64},
	'y': {64, false, WidthU64},
	'n': {128, true, WidthI128},
	'o': {128, false, WidthU128},
	'i': {64, true, WidthIsize},
	'j': {64, false, WidthUsize},
}

// parseConst matches the Const nonterminal and memoizes it against
// ctx.consts the same way parsePath and parseType do (spec.md §4.4
// step 4, §4.5).
func parseConst(c Cursor, ctx *Context) (Const, Cursor, bool) {
	build := alt(
		parseConstInteger,
		parseConstBool,
		parseConstChar,
		parseConstStr,
		parseConstRef,
		parseConstRefMut,
		parseConstArray,
		parseConstTuple,
		parseConstNamedStruct,
		parseConstPlaceholder,
		parseBackRefAgainst(func(ctx *Context, offset int) (Const, bool) { return ctx.lookupConst(offset) }),
	)
	return memoizing(build, func(ctx *Context, offset int, k Const) { ctx.rememberConst(offset, k) })(c, ctx)
}

// parseConstInteger dispatches on the single tag byte shared by all
// twelve integer widths, then delegates to parseConstInt for the
// common n?hex_ body.
func parseConstInteger(c Cursor, ctx *Context) (Const, Cursor, bool) {
	tagByte, c1, ok := take(1)(c, ctx)
	if !ok {
		return nil, c, false
	}
	kind, known := constIntByte[tagByte[0]]
	if !known {
		return nil, c, false
	}
	value, c2, ok := parseConstInt(kind.width, kind.signed)(c1, ctx)
	if !ok {
		return nil, c, false
	}
	return &IntConst{Width: kind.result, Value: value}, c2, true
}

// parseConstBool is the `b` const production: parsed the same way the
// original does, via parse_const_int(8, unsigned), then restricted to
// {0, 1} — any other magnitude is not a valid bool const.
func parseConstBool(c Cursor, ctx *Context) (Const, Cursor, bool) {
	_, c1, ok := tag("b")(c, ctx)
	if !ok {
		return nil, c, false
	}
	value, c2, ok := parseConstInt(8, false)(c1, ctx)
	if !ok {
		return nil, c, false
	}
	switch {
	case value.Sign() == 0:
		return &BoolConst{Value: false}, c2, true
	case value.Cmp(bigOne) == 0:
		return &BoolConst{Value: true}, c2, true
	default:
		return nil, c, false
	}
}

// parseConstChar is the `c` const production: parsed via
// parse_const_int(32, unsigned) and validated as a Unicode scalar value
// (rejecting the surrogate range and anything at or beyond the
// codepoint ceiling), mirroring char::try_from in the original.
func parseConstChar(c Cursor, ctx *Context) (Const, Cursor, bool) {
	_, c1, ok := tag("c")(c, ctx)
	if !ok {
		return nil, c, false
	}
	value, c2, ok := parseConstInt(32, false)(c1, ctx)
	if !ok {
		return nil, c, false
	}
	if !value.IsUint64() {
		return nil, c, false
	}
	v := value.Uint64()
	if v >= 0x110000 || (v >= 0xD800 && v <= 0xDFFF) {
		return nil, c, false
	}
	return &CharConst{Value: rune(v)}, c2, true
}

// parseConstStr is the `e` const production: a run of lowercase hex
// digits (always even length, two digits per encoded byte) terminated
// by `_`. The hex payload is kept verbatim; decoding it into bytes is
// left to the caller (ast.go's ConstStr doc comment).
func parseConstStr(c Cursor, ctx *Context) (Const, Cursor, bool) {
	hex, rest, ok := preceded(tag("e"), terminated(lowerHexDigit0, tag("_")))(c, ctx)
	if !ok || len(hex)%2 != 0 {
		return nil, c, false
	}
	return &StrConst{Str: ConstStr{Hex: hex}}, rest, true
}

func parseConstRef(c Cursor, ctx *Context) (Const, Cursor, bool) {
	elem, rest, ok := preceded(tag("R"), parseConst)(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &RefConst{Elem: elem}, rest, true
}

func parseConstRefMut(c Cursor, ctx *Context) (Const, Cursor, bool) {
	elem, rest, ok := preceded(tag("Q"), parseConst)(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &RefMutConst{Elem: elem}, rest, true
}

func parseConstArray(c Cursor, ctx *Context) (Const, Cursor, bool) {
	elems, rest, ok := delimited(tag("A"), many0(parseConst), tag("E"))(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &ArrayConst{Elems: elems}, rest, true
}

func parseConstTuple(c Cursor, ctx *Context) (Const, Cursor, bool) {
	elems, rest, ok := delimited(tag("T"), many0(parseConst), tag("E"))(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &TupleConst{Elems: elems}, rest, true
}

func parseConstNamedStruct(c Cursor, ctx *Context) (Const, Cursor, bool) {
	_, c1, ok := tag("V")(c, ctx)
	if !ok {
		return nil, c, false
	}
	path, c2, ok := parsePath(c1, ctx)
	if !ok {
		return nil, c, false
	}
	fields, c3, ok := parseConstFields(c2, ctx)
	if !ok {
		return nil, c, false
	}
	return &NamedStructConst{Path: path, Fields: fields}, c3, true
}

func parseConstPlaceholder(c Cursor, ctx *Context) (Const, Cursor, bool) {
	_, rest, ok := tag("p")(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &PlaceholderConst{}, rest, true
}

// parseConstFields matches a NamedStructConst's field-list shape: unit,
// positional (tuple), or named (struct).
func parseConstFields(c Cursor, ctx *Context) (ConstFields, Cursor, bool) {
	return alt(
		parseConstFieldsUnit,
		parseConstFieldsTuple,
		parseConstFieldsStruct,
	)(c, ctx)
}

func parseConstFieldsUnit(c Cursor, ctx *Context) (ConstFields, Cursor, bool) {
	_, rest, ok := tag("U")(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &UnitFields{}, rest, true
}

func parseConstFieldsTuple(c Cursor, ctx *Context) (ConstFields, Cursor, bool) {
	elems, rest, ok := delimited(tag("T"), many0(parseConst), tag("E"))(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &TupleFields{Elems: elems}, rest, true
}

func parseConstFieldsStruct(c Cursor, ctx *Context) (ConstFields, Cursor, bool) {
	fields, rest, ok := delimited(tag("S"), many0(parseStructField), tag("E"))(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &StructFields{Fields: fields}, rest, true
}

func parseStructField(c Cursor, ctx *Context) (StructField, Cursor, bool) {
	name, c1, ok := parseIdentifier(c, ctx)
	if !ok {
		return StructField{}, c, false
	}
	value, c2, ok := parseConst(c1, ctx)
	if !ok {
		return StructField{}, c, false
	}
	return StructField{Name: name, Value: value}, c2, true
}
