// Package matcher implements the two backtracking matchers: Direct, which
// walks the raw pattern text recursively, and Compiled, which walks an atom
// chain.
//
// Both are worst-case exponential (e.g. many `.*` atoms against a long
// subject that does not match), so both spend from a Budget and give up,
// reporting no match, once it runs out.
package matcher

// Budget limits the work a single match call may do. One unit is spent per
// recursive step or backtracking attempt.
//
// A Budget is not safe for concurrent use; give each call its own.
type Budget struct {
	limit    int
	used     int
	exceeded bool
}

// NewBudget returns a budget of limit work units.
// A non-positive limit never runs out.
func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

// spend consumes one unit and reports whether the caller may continue.
func (b *Budget) spend() bool {
	if b == nil {
		return true
	}
	if b.exceeded {
		return false
	}
	b.used++
	if b.limit > 0 && b.used > b.limit {
		b.exceeded = true
		return false
	}
	return true
}

// Used returns the number of units spent so far.
func (b *Budget) Used() int {
	if b == nil {
		return 0
	}
	return b.used
}

// Exceeded reports whether the budget ran out. When true, a false match
// result means "gave up", not "no match".
func (b *Budget) Exceeded() bool {
	return b != nil && b.exceeded
}
