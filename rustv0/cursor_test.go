package rustv0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_SplitAt(t *testing.T) {
	c := NewCursor("hello")

	prefix, rest, ok := c.splitAt(3)
	assert.True(t, ok)
	assert.Equal(t, "hel", prefix)
	assert.Equal(t, "lo", rest.Remaining())
	assert.Equal(t, 3, rest.Pos())
}

func TestCursor_SplitAt_PastEnd(t *testing.T) {
	c := NewCursor("hi")

	_, _, ok := c.splitAt(3)
	assert.False(t, ok)
}

func TestCursor_StripPrefix(t *testing.T) {
	c := NewCursor("_RC5regex")

	matched, rest, ok := c.stripPrefix("_R")
	assert.True(t, ok)
	assert.Equal(t, "_R", matched)
	assert.Equal(t, "C5regex", rest.Remaining())

	_, _, ok = rest.stripPrefix("X")
	assert.False(t, ok)
}

func TestCursor_Find(t *testing.T) {
	c := NewCursor("123abc")

	idx := c.find(isDecimalDigit)
	assert.Equal(t, 3, idx)
}

func TestCursor_Find_NoMatchConsumesAll(t *testing.T) {
	c := NewCursor("999")

	idx := c.find(isDecimalDigit)
	assert.Equal(t, 3, idx)
}
