// Package compiler turns pattern text into an atom chain.
package compiler

import (
	"github.com/coregx/atomre/atom"
	"github.com/coregx/atomre/syntax"
)

// Compile builds the atom chain for pattern, reading it left to right one
// atom at a time. `x*` becomes a star of x and `x+` becomes x followed by a
// star of x. An empty pattern yields an empty chain.
//
// maxAtoms caps the arena (non-positive means unlimited). When the cap is hit
// the partial chain is released and an *Error wrapping atom.ErrChainFull is
// returned. On success the caller owns the chain and must Release it.
func Compile(pattern string, maxAtoms int) (*atom.Chain, error) {
	c := atom.NewChain(maxAtoms)

	for pos := 0; pos < len(pattern); {
		tok := syntax.ParseAtom(pattern, pos)
		if err := push(c, tok); err != nil {
			c.Release()
			return nil, &Error{Pattern: pattern, Pos: pos, Err: err}
		}
		pos = tok.Next
	}
	return c, nil
}

func push(c *atom.Chain, tok syntax.Token) error {
	base := build(tok)

	switch tok.Quant {
	case syntax.QuantStar:
		_, err := c.Push(atom.StarOf(base))
		return err
	case syntax.QuantPlus:
		if _, err := c.Push(base); err != nil {
			return err
		}
		_, err := c.Push(atom.StarOf(base))
		return err
	default:
		_, err := c.Push(base)
		return err
	}
}

// build returns the unquantified atom for tok.
func build(tok syntax.Token) atom.Atom {
	switch tok.Op {
	case syntax.OpAnchor:
		return atom.Anchor()
	case syntax.OpEndAnchor:
		return atom.EndAnchor()
	case syntax.OpSet:
		return atom.Set(tok.Members)
	case syntax.OpWildcard:
		return atom.Wildcard()
	default:
		return atom.Literal(tok.Char)
	}
}
