package rustv0

// parse.go is the package's public entry point, following the
// teacher's own top-level-function style (api.go's GrammarFromBytes /
// GrammarFromFile): one function, a fresh piece of internal state per
// call, and a plain error return.

const entryPrefix = "_R"

// Parse decodes a v0 mangled symbol name. On success it returns the
// decoded Symbol and the unconsumed suffix of input (toolchains commonly
// append a linker-scoped suffix like ".llvm.<hash>" after the root
// symbol; spec.md §6 leaves acceptance of a non-empty suffix up to the
// caller). On failure it returns a *DecodeError whose Offset is 0: the
// start of the input when the entry prefix is missing, or the start of
// the grammar body when the Symbol production fails. The position of
// the innermost failing production is not tracked.
//
// Back-reference offsets are encoded relative to the start of the
// grammar body, not the start of the raw input, so the cursor handed to
// parseSymbol must restart at 0 right after the entry prefix is
// stripped (mirroring original_source/.../mod.rs, which builds its
// IndexedStr over the string already sliced past "_R") rather than
// simply continuing the full-input cursor's running position.
func Parse(input string) (Symbol, string, error) {
	c := NewCursor(input)
	_, stripped, ok := c.stripPrefix(entryPrefix)
	if !ok {
		return Symbol{}, "", &DecodeError{Offset: c.Pos()}
	}
	rest := NewCursor(stripped.Remaining())
	ctx := newContext()
	sym, after, ok := parseSymbol(rest, ctx)
	if !ok {
		return Symbol{}, "", &DecodeError{Offset: rest.Pos()}
	}
	return *sym, after.Remaining(), nil
}
