package atom

import (
	"strconv"
	"strings"
)

// String returns a one-line description of the atom.
func (a *Atom) String() string {
	var sb strings.Builder
	sb.WriteString(a.Kind.String())
	if a.Kind == KindStar {
		sb.WriteString(" of ")
		sb.WriteString(a.Of.String())
	}

	switch {
	case a.Repeated() == KindWildcard, a.Kind == KindAnchor, a.Kind == KindEndAnchor:
	case a.Arity == AritySet:
		sb.WriteString(" set[")
		sb.Write(a.Set.Values())
		sb.WriteString("] size ")
		sb.WriteString(strconv.Itoa(a.Set.Size()))
	default:
		sb.WriteString(" ")
		sb.WriteString(strconv.QuoteRune(rune(a.Char)))
	}
	return sb.String()
}

// String renders the chain one numbered atom per line, head first.
func (c *Chain) String() string {
	if c.released {
		return "(released)\n"
	}
	if c.head == NoAtom {
		return "(empty)\n"
	}

	var sb strings.Builder
	n := 1
	for h := c.head; h != NoAtom; h = c.Next(h) {
		sb.WriteString(strconv.Itoa(n))
		sb.WriteString(": ")
		sb.WriteString(c.At(h).String())
		sb.WriteByte('\n')
		n++
	}
	return sb.String()
}
