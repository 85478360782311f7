package rustv0

// Context is the shared parsing state threaded through every production
// call: three position-keyed memo tables for back-reference resolution
// (spec.md §4.5), one per category that can be the target of a `B`
// back-reference. A parse call owns exactly one Context for its
// duration; nothing is shared across calls to Parse (spec.md §5).
type Context struct {
	paths  map[int]Path
	types  map[int]Type
	consts map[int]Const
}

// newContext returns an empty Context ready for a fresh parse.
func newContext() *Context {
	return &Context{
		paths:  map[int]Path{},
		types:  map[int]Type{},
		consts: map[int]Const{},
	}
}

func (ctx *Context) rememberPath(offset int, p Path) { ctx.paths[offset] = p }
func (ctx *Context) rememberType(offset int, t Type) { ctx.types[offset] = t }
func (ctx *Context) rememberConst(offset int, k Const) { ctx.consts[offset] = k }

func (ctx *Context) lookupPath(offset int) (Path, bool) {
	p, ok := ctx.paths[offset]
	return p, ok
}

func (ctx *Context) lookupType(offset int) (Type, bool) {
	t, ok := ctx.types[offset]
	return t, ok
}

func (ctx *Context) lookupConst(offset int) (Const, bool) {
	k, ok := ctx.consts[offset]
	return k, ok
}
