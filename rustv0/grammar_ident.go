package rustv0

import "strings"

// grammar_ident.go implements the Identifier/Disambiguator/
// UndisambiguatedIdentifier productions of spec.md §4.4, grounded on
// original_source/.../mod.rs's parse_identifier, parse_disambiguator,
// and parse_undisambiguated_identifier.

// parseDisambiguator matches `s<base62>`.
func parseDisambiguator(c Cursor, ctx *Context) (uint64, Cursor, bool) {
	return preceded(tag("s"), parseBase62Number)(c, ctx)
}

// parseIdentifier matches the opt-u64 disambiguator followed by an
// undisambiguated identifier.
func parseIdentifier(c Cursor, ctx *Context) (*Identifier, Cursor, bool) {
	return mapFn(
		pair(optU64Bump(parseDisambiguator), parseUndisambiguatedIdentifier),
		func(p pairResult[uint64, string]) *Identifier {
			return &Identifier{Disambiguator: p.A, Name: p.B}
		},
	)(c, ctx)
}

// parseUndisambiguatedIdentifier matches an optional `u` punycode flag,
// a decimal length, an optional `_` separator, then exactly that many
// bytes of name. If the `u` flag was set, the bytes' final `_` is
// rewritten to `-` and the result is punycode-decoded; otherwise the
// bytes are returned verbatim (the grammar guarantees they're printable
// identifier characters; this stage does not validate that).
func parseUndisambiguatedIdentifier(c Cursor, ctx *Context) (string, Cursor, bool) {
	isPunycode, rest, ok := mapFn(opt(tag("u")), func(v *string) bool { return v != nil })(c, ctx)
	if !ok {
		return "", c, false
	}
	length64, rest2, ok := parseDecimalNumber(rest, ctx)
	if !ok {
		return "", c, false
	}
	length, ok := toInt(length64)
	if !ok {
		return "", c, false
	}
	_, rest3, _ := opt(tag("_"))(rest2, ctx)
	name, rest4, ok := take(length)(rest3, ctx)
	if !ok {
		return "", c, false
	}
	decoded, ok := decodeIdentifierName(name, isPunycode)
	if !ok {
		return "", c, false
	}
	return decoded, rest4, true
}

func decodeIdentifierName(name string, isPunycode bool) (string, bool) {
	if !isPunycode {
		return name, true
	}
	buffer := []byte(name)
	if idx := strings.LastIndexByte(name, '_'); idx >= 0 {
		buffer[idx] = '-'
	}
	return decodePunycode(string(buffer))
}

func toInt(v uint64) (int, bool) {
	if v > uint64(^uint(0)>>1) {
		return 0, false
	}
	return int(v), true
}
