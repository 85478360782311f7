package rustv0

// grammar_backref.go factors the one piece of machinery shared by the
// three memoizing productions (path, type, const): resolve a `B`-tagged
// back-reference against a category's memo table, and remember a fresh
// result under the offset its production began at. See spec.md §4.4
// step 3-4 and §4.5.

// parseBackRefAgainst resolves a back-reference offset against lookup,
// failing the containing alt branch on a miss.
func parseBackRefAgainst[T any](lookup func(*Context, int) (T, bool)) parserFn[T] {
	return mapOptContext(parseBackRefOffset, func(offset int, ctx *Context) (T, bool) {
		return lookup(ctx, offset)
	})
}

// memoizing wraps a recursive production `build` so that, regardless of
// whether the result came from a fresh constructor or from resolving a
// back-reference, it is inserted into the memo table (via remember)
// under the offset the production began at — the offset recorded
// *before* build runs. This is what lets a later `B` reference this
// same position even when the value it resolves to was itself produced
// by an earlier back-reference (spec.md §4.4 step 4).
func memoizing[T any](build func(Cursor, *Context) (T, Cursor, bool), remember func(*Context, int, T)) parserFn[T] {
	return func(c Cursor, ctx *Context) (T, Cursor, bool) {
		entry := c.Pos()
		return inspectContext(build, func(v T, ctx *Context) {
			remember(ctx, entry, v)
		})(c, ctx)
	}
}
