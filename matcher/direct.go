package matcher

import (
	"github.com/coregx/atomre/syntax"
)

// Direct reports whether pattern matches subject, interpreting the pattern
// text as it goes without compiling it.
//
// A leading '^' pins the match to offset 0. Otherwise every offset from 0 to
// len(subject) inclusive is tried in order; the empty suffix is a valid
// start, so a pattern of only optional atoms matches any subject.
func Direct(pattern, subject string, b *Budget) bool {
	d := direct{pattern: pattern, subject: subject, budget: b}

	if pattern != "" {
		if tok := syntax.ParseAtom(pattern, 0); tok.Op == syntax.OpAnchor {
			return d.rec(tok.Next, 0)
		}
	}

	for si := 0; si <= len(subject); si++ {
		if d.rec(0, si) {
			return true
		}
		if b.Exceeded() {
			return false
		}
	}
	return false
}

type direct struct {
	pattern string
	subject string
	budget  *Budget
}

// rec matches pattern[pi:] against subject starting exactly at si.
func (d *direct) rec(pi, si int) bool {
	if !d.budget.spend() {
		return false
	}
	if pi >= len(d.pattern) {
		return true
	}

	tok := syntax.ParseAtom(d.pattern, pi)
	switch tok.Quant {
	case syntax.QuantStar:
		return d.star(tok, tok.Next, si)
	case syntax.QuantPlus:
		if d.accepts(tok, si) {
			return d.star(tok, tok.Next, si+1)
		}
		return false
	}

	if tok.Op == syntax.OpEndAnchor {
		return si == len(d.subject)
	}

	if d.accepts(tok, si) {
		return d.rec(tok.Next, si+1)
	}
	return false
}

// star consumes the longest run of tok starting at si, then backs off one
// character at a time until pattern[pi:] matches the rest.
func (d *direct) star(tok syntax.Token, pi, si int) bool {
	t := si
	for d.accepts(tok, t) {
		t++
	}
	for ; t >= si; t-- {
		if d.rec(pi, t) {
			return true
		}
		if d.budget.Exceeded() {
			return false
		}
	}
	return false
}

func (d *direct) accepts(tok syntax.Token, si int) bool {
	return si < len(d.subject) && tok.Matches(d.subject[si])
}
