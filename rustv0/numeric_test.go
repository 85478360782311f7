package rustv0

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimalNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint64
		rest     string
		ok       bool
	}{
		{name: "zero literal", input: "0abc", expected: 0, rest: "abc", ok: true},
		{name: "multi digit", input: "123x", expected: 123, rest: "x", ok: true},
		{name: "leading zero rejected", input: "01", expected: 0, rest: "01", ok: false},
		{name: "no digits", input: "abc", expected: 0, rest: "abc", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext()
			v, rest, ok := parseDecimalNumber(NewCursor(tt.input), ctx)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, v)
			}
			assert.Equal(t, tt.rest, rest.Remaining())
		})
	}
}

func TestParseBase62Number(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint64
		ok       bool
	}{
		{name: "empty run is zero", input: "_rest", expected: 0, ok: true},
		{name: "single digit bumps by one", input: "0_rest", expected: 1, ok: true},
		// parseBase62Number itself applies one "+1"; a disambiguator
		// reaches its final displayed value only after optU64Bump
		// applies a second "+1" on top (see TestOptU64Bump_*below and
		// TestParse_NestedPathWithLinkerSuffix's end-to-end value).
		{name: "hex-like name disambiguator digits", input: "6GSVXm7oiwY_", expected: 0x4df147058689a775, ok: true},
		{name: "missing terminator fails", input: "abc", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext()
			v, _, ok := parseBase62Number(NewCursor(tt.input), ctx)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, v)
			}
		})
	}
}

func TestOptU64Bump_AbsentIsZero(t *testing.T) {
	ctx := newContext()
	v, rest, ok := optU64Bump(parseDisambiguator)(NewCursor("rest"), ctx)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), v)
	assert.Equal(t, "rest", rest.Remaining())
}

func TestOptU64Bump_PresentEmptyRunBumpsToOne(t *testing.T) {
	// parseDisambiguator's own parseBase62Number turns an empty digit
	// run into 0 (the "+1" convention only applies to non-empty runs);
	// optU64Bump then bumps that since the option was present at all,
	// landing on 1.
	ctx := newContext()
	v, rest, ok := optU64Bump(parseDisambiguator)(NewCursor("s_rest"), ctx)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), v)
	assert.Equal(t, "rest", rest.Remaining())
}

func TestOptOrZero_NoBump(t *testing.T) {
	ctx := newContext()
	v, rest, ok := optOrZero(parseLifetime)(NewCursor("L0_rest"), ctx)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), v)
	assert.Equal(t, "rest", rest.Remaining())

	v2, rest2, ok2 := optOrZero(parseLifetime)(NewCursor("rest"), ctx)
	assert.True(t, ok2)
	assert.Equal(t, uint64(0), v2)
	assert.Equal(t, "rest", rest2.Remaining())
}

func TestParseBase62Number_OverflowFails(t *testing.T) {
	ctx := newContext()
	// "lYGhA16ahyg" is 2^64 in base 62, one past a uint64 accumulator.
	_, _, ok := parseBase62Number(NewCursor("lYGhA16ahyg_"), ctx)
	assert.False(t, ok)
}

func TestParseConstInt_BoundsMagnitudeBeforeNegating(t *testing.T) {
	ctx := newContext()

	// i8's own positive range tops out at 0x7f; 0x80 is out of range
	// even though it would fit in 8 bits unsigned.
	_, _, ok := parseConstInt(8, true)(NewCursor("80_"), ctx)
	assert.False(t, ok)

	v, rest, ok := parseConstInt(8, true)(NewCursor("7f_rest"), ctx)
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(127), v)
	assert.Equal(t, "rest", rest.Remaining())
}

func TestParseConstInt_Negative(t *testing.T) {
	ctx := newContext()

	v, rest, ok := parseConstInt(8, true)(NewCursor("n7f_rest"), ctx)
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(-127), v)
	assert.Equal(t, "rest", rest.Remaining())
}

func TestParseConstInt_NegativeZeroAllowedButNegativeNonZeroRejectedForUnsigned(t *testing.T) {
	ctx := newContext()

	// checked_neg on an unsigned zero is Some(0), not None, so the `n`
	// flag on a zero magnitude is accepted for an unsigned width too.
	v, rest, ok := parseConstInt(8, false)(NewCursor("n0_rest"), ctx)
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(0), v)
	assert.Equal(t, "rest", rest.Remaining())

	// any nonzero magnitude overflows checked_neg on an unsigned width.
	_, _, ok = parseConstInt(8, false)(NewCursor("n1_"), ctx)
	assert.False(t, ok)
}

func TestParseConstInt_UnsignedFullRange(t *testing.T) {
	ctx := newContext()
	v, rest, ok := parseConstInt(8, false)(NewCursor("ff_rest"), ctx)
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(255), v)
	assert.Equal(t, "rest", rest.Remaining())
}

func TestParseBackRefOffset(t *testing.T) {
	ctx := newContext()
	v, rest, ok := parseBackRefOffset(NewCursor("B4_rest"), ctx)
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, "rest", rest.Remaining())
}
