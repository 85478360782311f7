package rustv0

import "fmt"

// DecodeError is returned by Parse when the input does not match the
// v0 grammar: either the entry prefix itself was missing, or the
// Symbol production failed somewhere past it. Offset is the byte
// position of the production that failed as a whole: 0 for a missing
// entry prefix, and 0 relative to the grammar body (just past "_R")
// when the Symbol production fails. It does not point at the innermost
// production that failed.
// spec.md §7 calls for a single abstract failure outcome with no
// recoverable detail beyond an optional position for diagnostics; this
// mirrors the teacher's own backtrackingError (errors.go), a plain
// struct plus an fmt.Sprintf-built Error(), not an error-wrapping
// library.
type DecodeError struct {
	Offset int
}

// Error implements the error interface, mirroring the plain
// fmt.Sprintf-built messages of the teacher's ParsingError/
// backtrackingError (errors.go) rather than reaching for an error-
// wrapping library.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("rustv0: could not decode symbol at offset %d", e.Offset)
}
