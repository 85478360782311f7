package rustv0

import "strings"

// Cursor is a thin wrapper over the remaining input string, tracking the
// byte offset of its first character relative to wherever NewCursor was
// first called. The offset is the key used by the back-reference memo
// tables (Context, in context.go), which are only ever threaded through
// a Cursor built over the grammar body, i.e. the input already sliced
// past the "_R" entry prefix (see parse.go's Parse) — back-reference
// offsets in a v0 symbol are encoded relative to that position, not to
// the start of the raw mangled name. Cursor is a value type: advancing
// it never mutates the input it was constructed from, so alt/opt-style
// backtracking is simply "use the cursor you had before trying".
type Cursor struct {
	input string
	pos   int
}

// NewCursor wraps input as a cursor positioned at offset 0.
func NewCursor(input string) Cursor {
	return Cursor{input: input, pos: 0}
}

// Pos is the absolute byte offset of the cursor's first remaining byte
// within the original input.
func (c Cursor) Pos() int { return c.pos }

// Remaining is the unconsumed suffix of the original input.
func (c Cursor) Remaining() string { return c.input }

// splitAt returns the first n bytes as the consumed prefix and a cursor
// advanced by n bytes. It fails if n exceeds the remaining length. Every
// tag and length prefix in this grammar is ASCII, so every split lands
// on a byte boundary by construction; splitAt does not itself validate
// UTF-8 boundaries.
func (c Cursor) splitAt(n int) (prefix string, rest Cursor, ok bool) {
	if n < 0 || n > len(c.input) {
		return "", Cursor{}, false
	}
	return c.input[:n], Cursor{input: c.input[n:], pos: c.pos + n}, true
}

// stripPrefix consumes literal from the front of the cursor's remaining
// input, returning the matched slice and the advanced cursor.
func (c Cursor) stripPrefix(literal string) (matched string, rest Cursor, ok bool) {
	if !strings.HasPrefix(c.input, literal) {
		return "", Cursor{}, false
	}
	return c.splitAt(len(literal))
}

// find returns the byte index of the first byte not satisfying pred, or
// the length of the remaining input when every byte satisfies it.
func (c Cursor) find(pred func(byte) bool) int {
	for i := 0; i < len(c.input); i++ {
		if !pred(c.input[i]) {
			return i
		}
	}
	return len(c.input)
}
