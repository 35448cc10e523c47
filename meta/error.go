package meta

import (
	"errors"
	"fmt"
)

// ErrBudgetExceeded is returned when a match call runs out of steps before
// reaching a decision. The pattern may or may not match.
var ErrBudgetExceeded = errors.New("atomre: step budget exceeded")

// ErrTooManyAtoms is returned when a pattern compiles to more atoms than
// Config.MaxAtoms allows.
var ErrTooManyAtoms = errors.New("atomre: too many atoms")

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string
	Pos     int // offset of the atom that failed, -1 if unknown
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("atomre: compiling %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
	}
	return fmt.Sprintf("atomre: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
