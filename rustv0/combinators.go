package rustv0

// combinators.go is the generic half of the parser-combinator toolkit
// described in spec.md §4.2, modeled on the teacher's own generic
// ParserFn[T]/Choice/ZeroOrMore/Optional family (parser.go:360-495 in
// the teacher repo), adapted from a shared mutable *Parser receiver to
// an explicit (Cursor, *Context) pair threaded through every call.
//
// A parserFn either succeeds, returning its output and a cursor
// advanced past what it consumed, or fails, in which case the returned
// cursor must not be relied on (the primitives return the zero value,
// the combinators in this file return the cursor they were given) —
// callers always keep the cursor they passed in on failure. There is no partial
// consumption on failure anywhere in this toolkit; that invariant is
// what makes alt/opt backtracking free (spec.md §4.2: "a failing
// map-opt restores the cursor the caller passed in").
type parserFn[T any] func(Cursor, *Context) (T, Cursor, bool)

// opt tries p; on success it returns a pointer to p's output, and on
// failure it succeeds with nil without consuming input.
func opt[T any](p parserFn[T]) parserFn[*T] {
	return func(c Cursor, ctx *Context) (*T, Cursor, bool) {
		if v, rest, ok := p(c, ctx); ok {
			return &v, rest, true
		}
		return nil, c, true
	}
}

// alt tries each parser in order, returning the first success. It fails
// only if every alternative fails, and never consumes input on overall
// failure.
func alt[T any](ps ...parserFn[T]) parserFn[T] {
	return func(c Cursor, ctx *Context) (T, Cursor, bool) {
		var zero T
		for _, p := range ps {
			if v, rest, ok := p(c, ctx); ok {
				return v, rest, true
			}
		}
		return zero, c, false
	}
}

// many0 repeats p until it fails, collecting every successful output
// into a slice (never nil; empty rather than nil when p never
// succeeds, matching how the grammar treats "zero matches" as a
// present-but-empty list rather than an absent one).
func many0[T any](p parserFn[T]) parserFn[[]T] {
	return func(c Cursor, ctx *Context) ([]T, Cursor, bool) {
		out := []T{}
		for {
			v, rest, ok := p(c, ctx)
			if !ok {
				return out, c, true
			}
			out = append(out, v)
			c = rest
		}
	}
}

// mapFn transforms a parser's output with f, which cannot itself fail.
func mapFn[T, U any](p parserFn[T], f func(T) U) parserFn[U] {
	return func(c Cursor, ctx *Context) (U, Cursor, bool) {
		var zero U
		v, rest, ok := p(c, ctx)
		if !ok {
			return zero, c, false
		}
		return f(v), rest, true
	}
}

// mapOpt transforms a parser's output with a fallible function. A false
// result from f fails the whole parser and rewinds to the cursor
// passed in, exactly as if p itself had failed.
func mapOpt[T, U any](p parserFn[T], f func(T) (U, bool)) parserFn[U] {
	return func(c Cursor, ctx *Context) (U, Cursor, bool) {
		var zero U
		v, rest, ok := p(c, ctx)
		if !ok {
			return zero, c, false
		}
		u, ok := f(v)
		if !ok {
			return zero, c, false
		}
		return u, rest, true
	}
}

// mapOptContext is mapOpt with read/write access to the shared parsing
// context, used for back-reference resolution against the memo tables.
func mapOptContext[T, U any](p parserFn[T], f func(T, *Context) (U, bool)) parserFn[U] {
	return func(c Cursor, ctx *Context) (U, Cursor, bool) {
		var zero U
		v, rest, ok := p(c, ctx)
		if !ok {
			return zero, c, false
		}
		u, ok := f(v, ctx)
		if !ok {
			return zero, c, false
		}
		return u, rest, true
	}
}

// inspectContext runs p; on success it invokes f with the output and
// the context (used to populate the memo tables at the production's
// entry offset) and then propagates p's result unchanged.
func inspectContext[T any](p parserFn[T], f func(T, *Context)) parserFn[T] {
	return func(c Cursor, ctx *Context) (T, Cursor, bool) {
		v, rest, ok := p(c, ctx)
		if !ok {
			return v, c, false
		}
		f(v, ctx)
		return v, rest, true
	}
}

// preceded runs prefix then p, discarding prefix's output.
func preceded[P, T any](prefix parserFn[P], p parserFn[T]) parserFn[T] {
	return func(c Cursor, ctx *Context) (T, Cursor, bool) {
		var zero T
		_, rest, ok := prefix(c, ctx)
		if !ok {
			return zero, c, false
		}
		v, rest2, ok := p(rest, ctx)
		if !ok {
			return zero, c, false
		}
		return v, rest2, true
	}
}

// terminated runs p then suffix, discarding suffix's output.
func terminated[T, S any](p parserFn[T], suffix parserFn[S]) parserFn[T] {
	return func(c Cursor, ctx *Context) (T, Cursor, bool) {
		var zero T
		v, rest, ok := p(c, ctx)
		if !ok {
			return zero, c, false
		}
		_, rest2, ok := suffix(rest, ctx)
		if !ok {
			return zero, c, false
		}
		return v, rest2, true
	}
}

// delimited runs prefix, then p, then suffix, discarding the prefix and
// suffix outputs and keeping p's.
func delimited[P, T, S any](prefix parserFn[P], p parserFn[T], suffix parserFn[S]) parserFn[T] {
	return terminated(preceded(prefix, p), suffix)
}

// pair runs a then b in sequence, returning both outputs. It is the
// two-arity building block the grammar productions use in place of a
// variadic heterogeneous tuple combinator (Go generics do not support
// one cleanly); productions needing more than two results chain pair
// or simply sequence calls inline, the same way a hand-written
// recursive-descent parser would.
func pair[A, B any](a parserFn[A], b parserFn[B]) parserFn[pairResult[A, B]] {
	return func(c Cursor, ctx *Context) (pairResult[A, B], Cursor, bool) {
		var zero pairResult[A, B]
		av, rest, ok := a(c, ctx)
		if !ok {
			return zero, c, false
		}
		bv, rest2, ok := b(rest, ctx)
		if !ok {
			return zero, c, false
		}
		return pairResult[A, B]{av, bv}, rest2, true
	}
}

type pairResult[A, B any] struct {
	A A
	B B
}
