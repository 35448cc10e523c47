// Package syntax scans the pattern language atom by atom.
//
// The language has no escapes:
//
//	c       any other byte matches itself
//	.       any single byte that is present
//	^       start anchor (first character only, never quantified)
//	$       end anchor (last character only)
//	[...]   any one member; no ranges, no negation; empty or unterminated
//	        brackets match nothing
//	x*      zero or more of x
//	x+      one or more of x
//
// An atom other than a set runs until the next byte that can start an atom:
// a letter, a digit, '^', '$', '.', '[' or a space. Any other bytes after it,
// such as '-', ']' or a run of quantifiers, belong to that atom and are
// skipped. Only the byte right after the atom body can quantify it. A set
// absorbs only the run of '*' and '+' after its closing bracket. Any other
// byte at the start of the pattern or right after a set is a literal atom.
//
// Both the compiler and the direct matcher read patterns through ParseAtom,
// so the two engines always agree on where atoms begin and end.
package syntax

import "strings"

// Op classifies an atom.
type Op uint8

const (
	OpLiteral Op = iota
	OpWildcard
	OpSet
	OpAnchor
	OpEndAnchor
)

// Quant is the quantifier following an atom.
type Quant uint8

const (
	QuantNone Quant = iota
	QuantStar
	QuantPlus
)

// Token is one atom of a pattern.
type Token struct {
	Op    Op
	Quant Quant

	// Char is the literal byte for OpLiteral.
	Char byte

	// Members is the bracket body for OpSet, a substring of the pattern.
	Members string

	// Start is the index of the atom's leading character.
	Start int

	// Next is the index of the following atom, or len(pattern).
	Next int
}

// ParseAtom returns the atom starting at pattern[pos].
// pos must be less than len(pattern).
func ParseAtom(pattern string, pos int) Token {
	tok := Token{Start: pos}
	end := pos + 1

	switch c := pattern[pos]; {
	case c == '^' && pos == 0:
		tok.Op = OpAnchor
		tok.Next = skipTrailing(pattern, end)
		return tok
	case c == '$' && pos == len(pattern)-1:
		tok.Op = OpEndAnchor
		tok.Next = end
		return tok
	case c == '[':
		tok.Op = OpSet
		if j := strings.IndexByte(pattern[pos+1:], ']'); j >= 0 {
			tok.Members = pattern[pos+1 : pos+1+j]
			end = pos + j + 2
		} else {
			end = len(pattern)
		}
	case c == '.':
		tok.Op = OpWildcard
	default:
		tok.Op = OpLiteral
		tok.Char = c
	}

	if end < len(pattern) {
		switch pattern[end] {
		case '*':
			tok.Quant = QuantStar
		case '+':
			tok.Quant = QuantPlus
		}
	}
	if tok.Op == OpSet {
		tok.Next = skipQuantifiers(pattern, end)
	} else {
		tok.Next = skipTrailing(pattern, end)
	}
	return tok
}

// NextAtomBoundary returns the index where the atom after the one starting
// at pos begins. The current atom's body and the bytes it absorbs are
// skipped. It returns len(pattern) when no atom follows.
func NextAtomBoundary(pattern string, pos int) int {
	if pos >= len(pattern) {
		return len(pattern)
	}
	return ParseAtom(pattern, pos).Next
}

// Matches reports whether the atom's predicate accepts c.
// Anchors accept nothing.
func (t Token) Matches(c byte) bool {
	switch t.Op {
	case OpWildcard:
		return true
	case OpLiteral:
		return t.Char == c
	case OpSet:
		return strings.IndexByte(t.Members, c) >= 0
	default:
		return false
	}
}

// IsQuantifier reports whether c repeats the preceding atom.
func IsQuantifier(c byte) bool {
	return c == '*' || c == '+'
}

// IsLeading reports whether c always starts a new atom.
func IsLeading(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '^', '$', '.', '[', ' ':
		return true
	}
	return false
}

func skipTrailing(pattern string, i int) int {
	for i < len(pattern) && !IsLeading(pattern[i]) {
		i++
	}
	return i
}

func skipQuantifiers(pattern string, i int) int {
	for i < len(pattern) && IsQuantifier(pattern[i]) {
		i++
	}
	return i
}
