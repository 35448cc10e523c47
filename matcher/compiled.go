package matcher

import (
	"github.com/coregx/atomre/atom"
)

// Candidates finds offsets where a match may start.
//
// Find returns the first candidate at or after start, or -1 when none is
// left. It must never skip an offset where the chain could match.
type Candidates interface {
	Find(haystack []byte, start int) int
}

// CompiledOptions tunes a Compiled call.
type CompiledOptions struct {
	// Budget limits the work done; nil means unlimited.
	Budget *Budget

	// Prefilter, when set, replaces the offset-by-offset unanchored scan.
	// Only valid for chains whose every match begins with a non-empty
	// literal prefix the prefilter searches for.
	Prefilter Candidates
}

// Compiled reports whether the chain matches subject. The chain is only
// read; the caller keeps ownership and releases it.
//
// A chain headed by an anchor is tried once at offset 0 with the anchor
// skipped. Otherwise every offset from 0 to len(subject) inclusive is a
// candidate start.
func Compiled(c *atom.Chain, subject string, opts CompiledOptions) bool {
	w := walker{chain: c, subject: subject, budget: opts.Budget}

	head := c.Head()
	if head != atom.NoAtom && c.At(head).Kind == atom.KindAnchor {
		return w.walk(c.Next(head), 0)
	}

	if opts.Prefilter == nil {
		for si := 0; si <= len(subject); si++ {
			if w.walk(head, si) {
				return true
			}
			if w.budget.Exceeded() {
				return false
			}
		}
		return false
	}

	haystack := []byte(subject)
	for si := opts.Prefilter.Find(haystack, 0); si >= 0; si = opts.Prefilter.Find(haystack, si+1) {
		if w.walk(head, si) {
			return true
		}
		if w.budget.Exceeded() {
			return false
		}
	}
	return false
}

type walker struct {
	chain   *atom.Chain
	subject string
	budget  *Budget
}

// walk matches the chain from node h against subject starting exactly at si.
// Only stars backtrack; every other atom either advances or fails.
func (w *walker) walk(h atom.Handle, si int) bool {
	for h != atom.NoAtom {
		if !w.budget.spend() {
			return false
		}

		a := w.chain.At(h)
		switch a.Kind {
		case atom.KindStar:
			// The star decides the rest of the walk.
			return w.star(h, si)
		case atom.KindEndAnchor:
			if si != len(w.subject) {
				return false
			}
		case atom.KindLiteral, atom.KindWildcard:
			if !a.Matches(w.subject, si) {
				return false
			}
			si++
		default:
			// Invalid atoms and anchors past the head never match.
			return false
		}
		h = w.chain.Next(h)
	}
	return true
}

// star consumes the longest run of the star's atom, then retries the rest of
// the chain from each shorter run down to zero repetitions.
func (w *walker) star(h atom.Handle, si int) bool {
	a := w.chain.At(h)
	t := si
	for a.Matches(w.subject, t) {
		t++
	}

	next := w.chain.Next(h)
	for ; t >= si; t-- {
		if w.walk(next, t) {
			return true
		}
		if w.budget.Exceeded() {
			return false
		}
	}
	return false
}
