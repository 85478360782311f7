package rustv0

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConst_IntegerWidths(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    IntWidth
		expected int64
	}{
		{name: "i8 positive", input: "a7f_", width: WidthI8, expected: 127},
		{name: "u8 full range", input: "hff_", width: WidthU8, expected: 255},
		{name: "i16 negative", input: "sn7fff_", width: WidthI16, expected: -32767},
		{name: "u64 zero", input: "y0_", width: WidthU64, expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext()
			c, rest, ok := parseConst(NewCursor(tt.input), ctx)
			require.True(t, ok)
			assert.Equal(t, "", rest.Remaining())
			intConst, ok := c.(*IntConst)
			require.True(t, ok)
			assert.Equal(t, tt.width, intConst.Width)
			assert.Equal(t, big.NewInt(tt.expected), intConst.Value)
		})
	}
}

func TestParseConst_Bool(t *testing.T) {
	ctx := newContext()

	c, _, ok := parseConst(NewCursor("b0_"), ctx)
	require.True(t, ok)
	assert.Equal(t, &BoolConst{Value: false}, c)

	c2, _, ok := parseConst(NewCursor("b1_"), ctx)
	require.True(t, ok)
	assert.Equal(t, &BoolConst{Value: true}, c2)

	_, _, ok = parseConst(NewCursor("b2_"), ctx)
	assert.False(t, ok)
}

func TestParseConst_Char(t *testing.T) {
	ctx := newContext()

	c, rest, ok := parseConst(NewCursor("c41_rest"), ctx)
	require.True(t, ok)
	assert.Equal(t, "rest", rest.Remaining())
	charConst, ok := c.(*CharConst)
	require.True(t, ok)
	assert.Equal(t, 'A', charConst.Value)
}

func TestParseConst_CharRejectsSurrogateRange(t *testing.T) {
	ctx := newContext()
	_, _, ok := parseConst(NewCursor("cd800_"), ctx)
	assert.False(t, ok)
}

func TestParseConst_CharRejectsAboveScalarCeiling(t *testing.T) {
	ctx := newContext()
	_, _, ok := parseConst(NewCursor("c110000_"), ctx)
	assert.False(t, ok)
}

func TestParseConst_StrEvenHexLength(t *testing.T) {
	ctx := newContext()
	c, rest, ok := parseConst(NewCursor("e68656c6c6f_rest"), ctx)
	require.True(t, ok)
	assert.Equal(t, "rest", rest.Remaining())
	strConst, ok := c.(*StrConst)
	require.True(t, ok)
	assert.Equal(t, "68656c6c6f", strConst.Str.Hex)
}

func TestParseConst_StrOddHexLengthFails(t *testing.T) {
	ctx := newContext()
	_, _, ok := parseConst(NewCursor("e686_"), ctx)
	assert.False(t, ok)
}

func TestParseConst_ArrayAndTuple(t *testing.T) {
	ctx := newContext()

	arr, rest, ok := parseConst(NewCursor("Ah0_h1_E"), ctx)
	require.True(t, ok)
	assert.Equal(t, "", rest.Remaining())
	arrayConst, ok := arr.(*ArrayConst)
	require.True(t, ok)
	assert.Len(t, arrayConst.Elems, 2)

	tup, rest2, ok := parseConst(NewCursor("Th0_h1_E"), ctx)
	require.True(t, ok)
	assert.Equal(t, "", rest2.Remaining())
	tupleConst, ok := tup.(*TupleConst)
	require.True(t, ok)
	assert.Len(t, tupleConst.Elems, 2)
}

func TestParseConst_NamedStructWithFields(t *testing.T) {
	ctx := newContext()
	// V C3Foo S 1xh0_ E  -> struct Foo { x: 0u8 }
	c, rest, ok := parseConst(NewCursor("VC3FooS1xh0_E"), ctx)
	require.True(t, ok)
	assert.Equal(t, "", rest.Remaining())

	named, ok := c.(*NamedStructConst)
	require.True(t, ok)
	root, ok := named.Path.(*CrateRoot)
	require.True(t, ok)
	assert.Equal(t, "Foo", root.Name.Name)

	fields, ok := named.Fields.(*StructFields)
	require.True(t, ok)
	require.Len(t, fields.Fields, 1)
	assert.Equal(t, "x", fields.Fields[0].Name.Name)
}

func TestParseConst_UnitFields(t *testing.T) {
	ctx := newContext()
	c, rest, ok := parseConst(NewCursor("VC3FooU"), ctx)
	require.True(t, ok)
	assert.Equal(t, "", rest.Remaining())
	named, ok := c.(*NamedStructConst)
	require.True(t, ok)
	_, ok = named.Fields.(*UnitFields)
	require.True(t, ok)
}

func TestParseConst_Placeholder(t *testing.T) {
	ctx := newContext()
	c, rest, ok := parseConst(NewCursor("prest"), ctx)
	require.True(t, ok)
	assert.Equal(t, "rest", rest.Remaining())
	_, ok = c.(*PlaceholderConst)
	require.True(t, ok)
}
