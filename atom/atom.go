// Package atom defines the compiled form of a pattern: atoms linked into a
// chain that lives in a per-compile arena.
//
// An atom is one unit of pattern meaning: a literal character, a wildcard, a
// character set, an anchor, or a star repeating one of the first three.
// There is no plus kind; the compiler rewrites `x+` into `x` followed by a
// star of `x`.
package atom

import (
	"github.com/coregx/atomre/internal/sparse"
)

// Kind identifies what an atom matches.
type Kind uint8

const (
	// KindInvalid is the zero value. The compiler never produces it and the
	// compiled matcher treats it as a failed match.
	KindInvalid Kind = iota

	// KindLiteral matches one character, or one member of a set.
	KindLiteral

	// KindStar matches zero or more of the atom described by Of, Arity,
	// Char and Set.
	KindStar

	// KindWildcard matches any single character that is present.
	KindWildcard

	// KindAnchor pins the match start to offset 0. Only valid as the
	// first atom of a chain.
	KindAnchor

	// KindEndAnchor matches only at the end of the subject. Only valid as
	// the last atom of a chain.
	KindEndAnchor
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindStar:
		return "star"
	case KindWildcard:
		return "wildcard"
	case KindAnchor:
		return "anchor"
	case KindEndAnchor:
		return "end-anchor"
	default:
		return "invalid"
	}
}

// Arity tells whether an atom tests one fixed character or set membership.
type Arity uint8

const (
	// AritySingle compares against Char.
	AritySingle Arity = iota

	// AritySet tests membership in Set.
	AritySet
)

// Atom is one node of pattern meaning.
type Atom struct {
	Kind Kind

	// Of is the repeated kind of a star (KindLiteral or KindWildcard).
	// It is zero for every other kind.
	Of Kind

	Arity Arity

	// Char is the character to match when Arity is AritySingle.
	Char byte

	// Set is the owned member collection when Arity is AritySet, nil
	// otherwise. An empty set matches nothing.
	Set *sparse.ByteSet
}

// Literal returns an atom matching exactly c.
func Literal(c byte) Atom {
	return Atom{Kind: KindLiteral, Arity: AritySingle, Char: c}
}

// Set returns an atom matching any one byte of members.
// Members may repeat; an empty members string gives an inert atom.
func Set(members string) Atom {
	return Atom{Kind: KindLiteral, Arity: AritySet, Set: sparse.NewByteSet(members)}
}

// Wildcard returns an atom matching any single present character.
func Wildcard() Atom {
	return Atom{Kind: KindWildcard}
}

// Anchor returns a start anchor.
func Anchor() Atom {
	return Atom{Kind: KindAnchor}
}

// EndAnchor returns an end anchor.
func EndAnchor() Atom {
	return Atom{Kind: KindEndAnchor}
}

// StarOf returns a star repeating base. The star owns its own copy of the
// base's set. Panics if base is not a literal, set or wildcard atom.
func StarOf(base Atom) Atom {
	if base.Kind != KindLiteral && base.Kind != KindWildcard {
		panic("atom: StarOf called on " + base.Kind.String() + " atom")
	}
	star := base.Clone()
	star.Of = base.Kind
	star.Kind = KindStar
	return star
}

// Repeated reports the kind a predicate test should use: Of for a star,
// Kind otherwise.
func (a *Atom) Repeated() Kind {
	if a.Kind == KindStar {
		return a.Of
	}
	return a.Kind
}

// Matches reports whether the atom's character predicate accepts
// subject[i]. It is false at end of subject for every kind.
func (a *Atom) Matches(subject string, i int) bool {
	if i >= len(subject) {
		return false
	}
	switch a.Repeated() {
	case KindWildcard:
		return true
	case KindLiteral:
		if a.Arity == AritySet {
			return a.Set.Contains(subject[i])
		}
		return a.Char == subject[i]
	default:
		return false
	}
}
