package rustv0

// grammar_symbol.go implements the Symbol production that runs after
// the `_R` entry prefix has been stripped by parse.go: an optional
// encoding-version decimal number, the mangled path, and an optional
// instantiating-crate path appended by the monomorphization machinery
// (spec.md §4.4, grounded on original_source/.../mod.rs's parse_symbol).
func parseSymbol(c Cursor, ctx *Context) (*Symbol, Cursor, bool) {
	version, c1, ok := opt(parseDecimalNumber)(c, ctx)
	if !ok {
		return nil, c, false
	}
	path, c2, ok := parsePath(c1, ctx)
	if !ok {
		return nil, c, false
	}
	instantiating, c3, ok := opt(parsePath)(c2, ctx)
	if !ok {
		return nil, c, false
	}
	var instPath Path
	if instantiating != nil {
		instPath = *instantiating
	}
	return &Symbol{Version: version, Path: path, InstantiatingCrate: instPath}, c3, true
}
