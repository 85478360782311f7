package rustv0

// grammar_type.go implements the Type, BasicType, FnSig, Abi,
// DynBounds, DynTrait, and DynTraitAssocBinding productions of
// spec.md §4.4, mirroring original_source/.../mod.rs's parse_type and
// its neighbors one production at a time.

// parseType matches the Type nonterminal and memoizes the result under
// its entry offset, the same scheme as parsePath (spec.md §4.4, §4.5).
func parseType(c Cursor, ctx *Context) (Type, Cursor, bool) {
	build := alt(
		mapFn(parseBasicType, func(b BasicType) Type { return &BasicTypeNode{Basic: b} }),
		mapFn(parsePath, func(p Path) Type { return &NamedType{Path: p} }),
		parseTypeArray,
		parseTypeSlice,
		parseTypeTuple,
		parseTypeRef,
		parseTypeRefMut,
		parseTypePtrConst,
		parseTypePtrMut,
		parseTypeFn,
		parseTypeDynTrait,
		parseBackRefAgainst(func(ctx *Context, offset int) (Type, bool) { return ctx.lookupType(offset) }),
	)
	return memoizing(build, func(ctx *Context, offset int, t Type) { ctx.rememberType(offset, t) })(c, ctx)
}

// parseBasicType matches a single-byte primitive type tag. There is no
// `'K'` entry in this table, which is what lets parseGenericArg's alt
// fall through to its Const alternative on a `K`-prefixed input
// (spec.md §9's Open Question; see grammar_path.go's parseGenericArg).
func parseBasicType(c Cursor, ctx *Context) (BasicType, Cursor, bool) {
	return mapOpt(take(1), func(s string) (BasicType, bool) {
		kind, ok := basicTypeByte[s[0]]
		return kind, ok
	})(c, ctx)
}

var basicTypeByte = map[byte]BasicType{
	'a': BasicI8,
	'b': BasicBool,
	'c': BasicChar,
	'd': BasicF64,
	'e': BasicStr,
	'f': BasicF32,
	'h': BasicU8,
	'i': BasicIsize,
	'j': BasicUsize,
	'l': BasicI32,
	'm': BasicU32,
	'n': BasicI128,
	'o': BasicU128,
	's': BasicI16,
	't': BasicU16,
	'u': BasicUnit,
	'v': BasicEllipsis,
	'x': BasicI64,
	'y': BasicU64,
	'z': BasicNever,
	'p': BasicPlaceholder,
}

func parseTypeArray(c Cursor, ctx *Context) (Type, Cursor, bool) {
	_, c1, ok := tag("A")(c, ctx)
	if !ok {
		return nil, c, false
	}
	elem, c2, ok := parseType(c1, ctx)
	if !ok {
		return nil, c, false
	}
	length, c3, ok := parseConst(c2, ctx)
	if !ok {
		return nil, c, false
	}
	return &ArrayType{Elem: elem, Length: length}, c3, true
}

func parseTypeSlice(c Cursor, ctx *Context) (Type, Cursor, bool) {
	elem, rest, ok := preceded(tag("S"), parseType)(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &SliceType{Elem: elem}, rest, true
}

func parseTypeTuple(c Cursor, ctx *Context) (Type, Cursor, bool) {
	elems, rest, ok := delimited(tag("T"), many0(parseType), tag("E"))(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &TupleType{Elems: elems}, rest, true
}

func parseTypeRef(c Cursor, ctx *Context) (Type, Cursor, bool) {
	_, c1, ok := tag("R")(c, ctx)
	if !ok {
		return nil, c, false
	}
	lifetime, c2, ok := optOrZero(parseLifetime)(c1, ctx)
	if !ok {
		return nil, c, false
	}
	elem, c3, ok := parseType(c2, ctx)
	if !ok {
		return nil, c, false
	}
	return &RefType{Lifetime: lifetime, Elem: elem}, c3, true
}

func parseTypeRefMut(c Cursor, ctx *Context) (Type, Cursor, bool) {
	_, c1, ok := tag("Q")(c, ctx)
	if !ok {
		return nil, c, false
	}
	lifetime, c2, ok := optOrZero(parseLifetime)(c1, ctx)
	if !ok {
		return nil, c, false
	}
	elem, c3, ok := parseType(c2, ctx)
	if !ok {
		return nil, c, false
	}
	return &RefMutType{Lifetime: lifetime, Elem: elem}, c3, true
}

func parseTypePtrConst(c Cursor, ctx *Context) (Type, Cursor, bool) {
	elem, rest, ok := preceded(tag("P"), parseType)(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &PtrConstType{Elem: elem}, rest, true
}

func parseTypePtrMut(c Cursor, ctx *Context) (Type, Cursor, bool) {
	elem, rest, ok := preceded(tag("O"), parseType)(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &PtrMutType{Elem: elem}, rest, true
}

func parseTypeFn(c Cursor, ctx *Context) (Type, Cursor, bool) {
	sig, rest, ok := preceded(tag("F"), parseFnSig)(c, ctx)
	if !ok {
		return nil, c, false
	}
	return &FnType{Sig: sig}, rest, true
}

func parseTypeDynTrait(c Cursor, ctx *Context) (Type, Cursor, bool) {
	_, c1, ok := tag("D")(c, ctx)
	if !ok {
		return nil, c, false
	}
	bounds, c2, ok := parseDynBounds(c1, ctx)
	if !ok {
		return nil, c, false
	}
	lifetime, c3, ok := parseLifetime(c2, ctx)
	if !ok {
		return nil, c, false
	}
	return &DynTraitType{Bounds: bounds, Lifetime: lifetime}, c3, true
}

// parseFnSig matches: opt-u64 binder, opt `U` (unsafe), opt `K`+ABI,
// many0(type) terminated by `E`, then the return type.
func parseFnSig(c Cursor, ctx *Context) (*FnSig, Cursor, bool) {
	binder, c1, ok := optU64Bump(parseBinder)(c, ctx)
	if !ok {
		return nil, c, false
	}
	isUnsafe, c2, ok := mapFn(opt(tag("U")), func(v *string) bool { return v != nil })(c1, ctx)
	if !ok {
		return nil, c, false
	}
	abi, c3, ok := opt(preceded(tag("K"), parseAbi))(c2, ctx)
	if !ok {
		return nil, c, false
	}
	args, c4, ok := terminated(many0(parseType), tag("E"))(c3, ctx)
	if !ok {
		return nil, c, false
	}
	ret, c5, ok := parseType(c4, ctx)
	if !ok {
		return nil, c, false
	}
	var abiValue Abi
	if abi != nil {
		abiValue = *abi
	}
	return &FnSig{
		BoundLifetimes: binder,
		IsUnsafe:       isUnsafe,
		Abi:            abiValue,
		Arguments:      args,
		Return:         ret,
	}, c5, true
}

// parseAbi matches the bare `C` ABI or a named one.
func parseAbi(c Cursor, ctx *Context) (Abi, Cursor, bool) {
	return alt(
		mapFn(tag("C"), func(string) Abi { return &AbiC{} }),
		mapFn(parseUndisambiguatedIdentifier, func(name string) Abi { return &AbiNamed{Name: name} }),
	)(c, ctx)
}

// parseDynBounds matches an opt-u64 binder followed by many0(dyn-trait)
// terminated by `E`.
func parseDynBounds(c Cursor, ctx *Context) (*DynBounds, Cursor, bool) {
	binder, c1, ok := optU64Bump(parseBinder)(c, ctx)
	if !ok {
		return nil, c, false
	}
	traits, c2, ok := terminated(many0(parseDynTrait), tag("E"))(c1, ctx)
	if !ok {
		return nil, c, false
	}
	return &DynBounds{BoundLifetimes: binder, Traits: traits}, c2, true
}

func parseDynTrait(c Cursor, ctx *Context) (*DynTrait, Cursor, bool) {
	path, c1, ok := parsePath(c, ctx)
	if !ok {
		return nil, c, false
	}
	bindings, c2, ok := many0(parseDynTraitAssocBinding)(c1, ctx)
	if !ok {
		return nil, c, false
	}
	return &DynTrait{Path: path, Bindings: bindings}, c2, true
}

func parseDynTraitAssocBinding(c Cursor, ctx *Context) (*DynTraitAssocBinding, Cursor, bool) {
	_, c1, ok := tag("p")(c, ctx)
	if !ok {
		return nil, c, false
	}
	name, c2, ok := parseUndisambiguatedIdentifier(c1, ctx)
	if !ok {
		return nil, c, false
	}
	typ, c3, ok := parseType(c2, ctx)
	if !ok {
		return nil, c, false
	}
	return &DynTraitAssocBinding{Name: name, Type: typ}, c3, true
}
