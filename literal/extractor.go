package literal

import (
	"github.com/coregx/atomre/atom"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from long chains of sets:
//   - MaxLiterals: caps the cross product of consecutive sets ([ab][cd][ef]...)
//   - MaxLiteralLen: prevents extracting very long literals that hurt cache locality
//   - MaxClassSize: prevents expanding large sets like [abcdefghijklmnop]
type ExtractorConfig struct {
	// MaxLiterals limits the maximum number of literals to extract. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the maximum length of each extracted literal.
	// Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the size of sets to expand. Default: 16.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  16,
	}
}

// Extractor extracts the literal prefixes of compiled chains.
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns the literals that every match of the chain must
// start with, or an empty Seq when the chain has no mandatory literal prefix.
//
// Leading single-character and set atoms are consumed in order; sets expand
// into one literal per member. Extraction stops at the first star, wildcard,
// anchor, empty set, or when a limit would be exceeded. When the whole chain
// is consumed the literals are complete: finding one is a match.
//
// Examples:
//
//	"hello"        → ["hello"] (complete)
//	"he[lm]p.*"    → ["help", "hemp"]
//	"a*b"          → [] (first atom is optional)
//	"ab$"          → ["ab"]
func (e *Extractor) ExtractPrefixes(c *atom.Chain) *Seq {
	lits := [][]byte{{}}

	h := c.Head()
	for ; h != atom.NoAtom; h = c.Next(h) {
		a := c.At(h)
		if a.Kind != atom.KindLiteral || len(lits[0]) >= e.config.MaxLiteralLen {
			break
		}

		if a.Arity == atom.AritySingle {
			for i := range lits {
				lits[i] = append(lits[i], a.Char)
			}
			continue
		}

		n := a.Set.Size()
		if n == 0 || n > e.config.MaxClassSize || len(lits)*n > e.config.MaxLiterals {
			break
		}
		lits = cross(lits, a.Set.Values())
	}

	if len(lits[0]) == 0 {
		return NewSeq(false)
	}
	return NewSeq(h == atom.NoAtom, lits...)
}

// cross returns every literal of lits extended by every member.
func cross(lits [][]byte, members []byte) [][]byte {
	out := make([][]byte, 0, len(lits)*len(members))
	for _, lit := range lits {
		for _, m := range members {
			b := make([]byte, len(lit), len(lit)+1)
			copy(b, lit)
			out = append(out, append(b, m))
		}
	}
	return out
}
