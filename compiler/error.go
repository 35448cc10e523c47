package compiler

import "fmt"

// Error reports a pattern that could not be compiled. The only cause is an
// allocation failure in the atom arena.
type Error struct {
	Pattern string
	Pos     int // index of the atom that could not be allocated
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("compiling %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}
