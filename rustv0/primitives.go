package rustv0

// primitives.go holds the leaf-level parsers the grammar is built out
// of: literal tag matching, fixed-count take, predicate-driven
// take-while, and the three digit-run classes the numeric encodings
// (numeric.go) and identifiers (grammar_ident.go) need.

// tag consumes the exact literal, failing (without consuming) if the
// cursor's remaining input doesn't begin with it.
func tag(literal string) parserFn[string] {
	return func(c Cursor, ctx *Context) (string, Cursor, bool) {
		return c.stripPrefix(literal)
	}
}

// take consumes exactly n bytes, failing if fewer remain.
func take(n int) parserFn[string] {
	return func(c Cursor, ctx *Context) (string, Cursor, bool) {
		return c.splitAt(n)
	}
}

// takeWhile consumes the longest prefix of bytes all satisfying pred
// (possibly empty).
func takeWhile(pred func(byte) bool) parserFn[string] {
	return func(c Cursor, ctx *Context) (string, Cursor, bool) {
		n := c.find(pred)
		return c.splitAt(n)
	}
}

func isDecimalDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLowerHexDigit(b byte) bool {
	return isDecimalDigit(b) || (b >= 'a' && b <= 'f')
}

func isAlphanumeric(b byte) bool {
	return isDecimalDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// digit1 consumes one or more decimal digits; it fails on zero digits.
func digit1(c Cursor, ctx *Context) (string, Cursor, bool) {
	s, rest, ok := takeWhile(isDecimalDigit)(c, ctx)
	if !ok || len(s) == 0 {
		return "", Cursor{}, false
	}
	return s, rest, true
}

// lowerHexDigit0 consumes zero or more lowercase hex digits.
func lowerHexDigit0(c Cursor, ctx *Context) (string, Cursor, bool) {
	return takeWhile(isLowerHexDigit)(c, ctx)
}

// alphanumeric0 consumes zero or more ASCII alphanumerics (the digit
// class used by base-62 runs).
func alphanumeric0(c Cursor, ctx *Context) (string, Cursor, bool) {
	return takeWhile(isAlphanumeric)(c, ctx)
}
