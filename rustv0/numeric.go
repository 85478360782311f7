package rustv0

import (
	"math/big"
	"math/bits"
)

// numeric.go implements the three numeric encodings of spec.md §4.3,
// grounded directly on original_source/src/rust_v0/parsers/mod.rs
// (parse_decimal_number, parse_base62_number, parse_const_int, opt_u64),
// the canonical implementation this module's grammar is distilled from.

// parseDecimalNumber matches `parse_decimal_number`: either the literal
// "0" or a digit1 run. Because alt tries "0" as a fixed literal before
// digit1, any run starting with '0' matches only that single byte; an
// explicit check then fails the parse when another digit follows it, so
// a leading-zero multi-digit run like "01" is rejected rather than read
// as 0 followed by "1".
func parseDecimalNumber(c Cursor, ctx *Context) (uint64, Cursor, bool) {
	v, rest, ok := mapOpt(
		alt(tag("0"), digit1),
		func(s string) (uint64, bool) { return decodeDecimal(s) },
	)(c, ctx)
	if ok && v == 0 && rest.find(isDecimalDigit) > 0 {
		return 0, c, false
	}
	return v, rest, ok
}

func decodeDecimal(s string) (uint64, bool) {
	if s == "0" {
		return 0, true
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		d := uint64(s[i] - '0')
		hi, lo := bits.Mul64(v, 10)
		if hi != 0 {
			return 0, false
		}
		sum, carry := bits.Add64(lo, d, 0)
		if carry != 0 {
			return 0, false
		}
		v = sum
	}
	return v, true
}

// base62Digit maps one base-62 alphabet byte to its numeric value:
// 0-9 -> 0-9, a-z -> 10-35, A-Z -> 36-61.
func base62Digit(b byte) uint64 {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0')
	case b >= 'a' && b <= 'z':
		return 10 + uint64(b-'a')
	default:
		return 36 + uint64(b-'A')
	}
}

// parseBase62Number matches `parse_base62_number`: an alphanumeric0 run
// terminated by `_`. An empty run denotes 0; a non-empty run denotes
// its base-62 interpretation plus one. Overflow on the multiply, the
// add, or the final plus-one fails the parse.
func parseBase62Number(c Cursor, ctx *Context) (uint64, Cursor, bool) {
	return mapOpt(
		terminated(alphanumeric0, tag("_")),
		decodeBase62,
	)(c, ctx)
}

func decodeBase62(digits string) (uint64, bool) {
	if digits == "" {
		return 0, true
	}
	var v uint64
	for i := 0; i < len(digits); i++ {
		hi, lo := bits.Mul64(v, 62)
		if hi != 0 {
			return 0, false
		}
		sum, carry := bits.Add64(lo, base62Digit(digits[i]), 0)
		if carry != 0 {
			return 0, false
		}
		v = sum
	}
	sum, carry := bits.Add64(v, 1, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// optU64Bump wraps an opt-u64-convention parser: absent -> 0; present
// with decoded value n -> n+1 (checked). This is distinct from a plain
// opt-with-zero-default (optOrZero below) — spec.md §9 and §4.3 both
// flag conflating the two as a recurring off-by-one bug. It backs
// disambiguators (`s`) and fn/dyn-trait binder counts (`G`).
func optU64Bump(p parserFn[uint64]) parserFn[uint64] {
	return mapOpt(opt(p), func(v *uint64) (uint64, bool) {
		if v == nil {
			return 0, true
		}
		sum, carry := bits.Add64(*v, 1, 0)
		return sum, carry == 0
	})
}

// optOrZero wraps a plain optional parser: absent -> the zero value, no
// bump applied. It backs the Ref/RefMut lifetime, which spec.md §4.4
// explicitly calls out as *not* using the opt-u64 convention.
func optOrZero[T any](p parserFn[T]) parserFn[T] {
	return mapFn(opt(p), func(v *T) T {
		var zero T
		if v == nil {
			return zero
		}
		return *v
	})
}

// maxNonNegative returns the largest value that from_str_radix would
// accept as the *positive* parse of width-bit integer (signed or
// unsigned), before any negation is considered: 2^width-1 for unsigned
// widths, 2^(width-1)-1 for signed ones (since a bare digit run with no
// minus sign must still fit the type's own positive range).
func maxNonNegative(width int, signed bool) *big.Int {
	bound := new(big.Int).Lsh(big.NewInt(1), uint(width))
	if signed {
		bound.Rsh(bound, 1)
	}
	return bound.Sub(bound, big.NewInt(1))
}

func decodeHexBig(s string) (*big.Int, bool) {
	if s == "" {
		return new(big.Int), true
	}
	return new(big.Int).SetString(s, 16)
}

// parseConstInt matches `parse_const_int`: an optional leading `n`
// (negative), zero or more lowercase hex digits parsed as a
// nonnegative integer bounded by the target width's own positive range
// (width-1 bits for a signed width, the full width for unsigned),
// terminated by `_`. When the `n` flag is present the parsed magnitude
// is negated. For a signed width the magnitude is already bounded to
// the width's positive range before negation, so the negation itself
// never overflows; for an unsigned width only a zero magnitude may
// carry the flag, and any other magnitude fails. This mirrors
// `value.checked_neg()` in the original, which is applied only after
// `T::from_str_radix` has already succeeded against T's own range.
func parseConstInt(width int, signed bool) parserFn[*big.Int] {
	return terminated(
		mapOpt(
			pair(opt(tag("n")), lowerHexDigit0),
			func(p pairResult[*string, string]) (*big.Int, bool) {
				magnitude, ok := decodeHexBig(p.B)
				if !ok || magnitude.Cmp(maxNonNegative(width, signed)) > 0 {
					return nil, false
				}
				if p.A == nil {
					return magnitude, true
				}
				if !signed {
					if magnitude.Sign() == 0 {
						return magnitude, true
					}
					return nil, false
				}
				return new(big.Int).Neg(magnitude), true
			},
		),
		tag("_"),
	)
}

// parseBackRefOffset matches `parse_back_ref`: the tag `B` followed by
// a base-62 number, reinterpreted as an absolute byte offset.
func parseBackRefOffset(c Cursor, ctx *Context) (int, Cursor, bool) {
	return mapOpt(
		preceded(tag("B"), parseBase62Number),
		func(v uint64) (int, bool) {
			if v > uint64(^uint(0)>>1) {
				return 0, false
			}
			return int(v), true
		},
	)(c, ctx)
}
