package rustv0

// grammar_path.go implements the Path, ImplPath, and GenericArg
// productions of spec.md §4.4. Each alternative of the `Path` grammar
// is its own function, tried in turn by parsePath's alt — the same
// shape as the teacher's own one-function-per-alternative grammar code
// (e.g. grammar_syntactic.go in the teacher repo), and a one-to-one
// mirror of original_source/.../mod.rs's parse_path.

// parsePath matches the Path nonterminal: one of the six tagged
// constructors, or (failing all of those) a back-reference into the
// path memo table. Whatever succeeds is remembered in the table under
// the offset parsePath was called at (spec.md §4.4 step 4, §4.5).
func parsePath(c Cursor, ctx *Context) (Path, Cursor, bool) {
	build := alt(
		parsePathCrateRoot,
		parsePathInherentImpl,
		parsePathTraitImpl,
		parsePathTraitDefinition,
		parsePathNested,
		parsePathGeneric,
		parseBackRefAgainst(func(ctx *Context, offset int) (Path, bool) { return ctx.lookupPath(offset) }),
	)
	return memoizing(build, func(ctx *Context, offset int, p Path) { ctx.rememberPath(offset, p) })(c, ctx)
}

func parsePathCrateRoot(c Cursor, ctx *Context) (Path, Cursor, bool) {
	_, c1, ok := tag("C")(c, ctx)
	if !ok {
		return nil, c, false
	}
	id, c2, ok := parseIdentifier(c1, ctx)
	if !ok {
		return nil, c, false
	}
	return &CrateRoot{Name: id}, c2, true
}

func parsePathInherentImpl(c Cursor, ctx *Context) (Path, Cursor, bool) {
	_, c1, ok := tag("M")(c, ctx)
	if !ok {
		return nil, c, false
	}
	impl, c2, ok := parseImplPath(c1, ctx)
	if !ok {
		return nil, c, false
	}
	typ, c3, ok := parseType(c2, ctx)
	if !ok {
		return nil, c, false
	}
	return &InherentImpl{Impl: impl, Type: typ}, c3, true
}

func parsePathTraitImpl(c Cursor, ctx *Context) (Path, Cursor, bool) {
	_, c1, ok := tag("X")(c, ctx)
	if !ok {
		return nil, c, false
	}
	impl, c2, ok := parseImplPath(c1, ctx)
	if !ok {
		return nil, c, false
	}
	typ, c3, ok := parseType(c2, ctx)
	if !ok {
		return nil, c, false
	}
	trait, c4, ok := parsePath(c3, ctx)
	if !ok {
		return nil, c, false
	}
	return &TraitImpl{Impl: impl, Type: typ, Trait: trait}, c4, true
}

func parsePathTraitDefinition(c Cursor, ctx *Context) (Path, Cursor, bool) {
	_, c1, ok := tag("Y")(c, ctx)
	if !ok {
		return nil, c, false
	}
	typ, c2, ok := parseType(c1, ctx)
	if !ok {
		return nil, c, false
	}
	trait, c3, ok := parsePath(c2, ctx)
	if !ok {
		return nil, c, false
	}
	return &TraitDefinition{Type: typ, Trait: trait}, c3, true
}

func parsePathNested(c Cursor, ctx *Context) (Path, Cursor, bool) {
	_, c1, ok := tag("N")(c, ctx)
	if !ok {
		return nil, c, false
	}
	ns, c2, ok := take(1)(c1, ctx)
	if !ok {
		return nil, c, false
	}
	parent, c3, ok := parsePath(c2, ctx)
	if !ok {
		return nil, c, false
	}
	name, c4, ok := parseIdentifier(c3, ctx)
	if !ok {
		return nil, c, false
	}
	return &Nested{Namespace: ns[0], Parent: parent, Name: name}, c4, true
}

func parsePathGeneric(c Cursor, ctx *Context) (Path, Cursor, bool) {
	_, c1, ok := tag("I")(c, ctx)
	if !ok {
		return nil, c, false
	}
	base, c2, ok := parsePath(c1, ctx)
	if !ok {
		return nil, c, false
	}
	args, c3, ok := many0(parseGenericArg)(c2, ctx)
	if !ok {
		return nil, c, false
	}
	_, c4, ok := tag("E")(c3, ctx)
	if !ok {
		return nil, c, false
	}
	return &Generic{Base: base, Args: args}, c4, true
}

// parseImplPath matches the opt-u64 disambiguator followed by a path,
// shared by InherentImpl and TraitImpl.
func parseImplPath(c Cursor, ctx *Context) (*ImplPath, Cursor, bool) {
	disambiguator, c1, ok := optU64Bump(parseDisambiguator)(c, ctx)
	if !ok {
		return nil, c, false
	}
	path, c2, ok := parsePath(c1, ctx)
	if !ok {
		return nil, c, false
	}
	return &ImplPath{Disambiguator: disambiguator, Path: path}, c2, true
}

// parseLifetime matches `L<base62>`.
func parseLifetime(c Cursor, ctx *Context) (uint64, Cursor, bool) {
	return preceded(tag("L"), parseBase62Number)(c, ctx)
}

// parseBinder matches `G<base62>`.
func parseBinder(c Cursor, ctx *Context) (uint64, Cursor, bool) {
	return preceded(tag("G"), parseBase62Number)(c, ctx)
}

// parseGenericArg matches a lifetime, a type, or (failing those) a
// `K`-tagged const. The ordering matters: parseType's own alt has no
// branch that can start with `K` (see grammar_type.go's
// parseBasicType), so a `K`-prefixed input falls through to the const
// branch exactly as the Open Question in spec.md §9 requires.
func parseGenericArg(c Cursor, ctx *Context) (GenericArg, Cursor, bool) {
	if idx, rest, ok := parseLifetime(c, ctx); ok {
		return &LifetimeArg{Index: idx}, rest, true
	}
	if typ, rest, ok := parseType(c, ctx); ok {
		return &TypeArg{Type: typ}, rest, true
	}
	_, c1, ok := tag("K")(c, ctx)
	if !ok {
		return nil, c, false
	}
	k, c2, ok := parseConst(c1, ctx)
	if !ok {
		return nil, c, false
	}
	return &ConstArg{Const: k}, c2, true
}
