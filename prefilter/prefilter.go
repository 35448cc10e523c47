// Package prefilter finds candidate match offsets for compiled chains using
// the literal prefix every match must start with.
//
// A prefilter rejects offsets where no match can begin, so the compiled
// matcher only walks the chain where one of the prefix literals occurs.
// The strategy is chosen from the extracted literals:
//   - One single-byte literal → memchr
//   - Two or three single-byte literals → memchr2 / memchr3
//   - More single-byte literals → byte table scan
//   - One longer literal → memmem
//   - Several longer literals sharing a prefix of 2+ bytes → memmem on it
//   - Otherwise → Aho-Corasick automaton
//
// Example usage:
//
//	chain, _ := compiler.Compile("he[lm]p.*", 0)
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(chain)
//	pf, _ := prefilter.NewBuilder(prefixes).Build()
//	pos := pf.Find([]byte("a hemp rope"), 0)
//	// pos == 2
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/atomre/literal"
	"github.com/coregx/atomre/simd"
)

// Prefilter quickly finds positions where a match may start.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or -1
	// if there is none. A candidate is an offset where one of the literals
	// begins; the caller must still verify it unless IsComplete is true.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is a match by itself, which is
	// the case when the literals are the whole pattern.
	IsComplete() bool

	// HeapBytes returns the heap memory held by the prefilter.
	HeapBytes() int
}

// Builder constructs the best prefilter for a literal sequence.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a builder for the given prefix literals.
// prefixes may be nil.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build returns the prefilter for the builder's literals, or nil when there
// are no literals to search for. An error is returned only when the
// Aho-Corasick automaton cannot be built.
func (b *Builder) Build() (Prefilter, error) {
	return selectPrefilter(b.prefixes)
}

func selectPrefilter(seq *literal.Seq) (Prefilter, error) {
	if seq.MinLen() == 0 {
		return nil, nil
	}
	complete := seq.IsComplete()

	if seq.MaxLen() == 1 {
		needles := make([]byte, seq.Len())
		for i := range needles {
			needles[i] = seq.Bytes(i)[0]
		}
		return newBytePrefilter(needles, complete), nil
	}

	if seq.Len() == 1 {
		return newMemmemPrefilter(seq.Bytes(0), complete), nil
	}

	// A shared prefix is a cheaper filter than the automaton, at the cost of
	// more false candidates.
	if lcp := seq.LongestCommonPrefix(); len(lcp) >= 2 {
		return newMemmemPrefilter(lcp, false), nil
	}

	return newAhoCorasickPrefilter(seq, complete)
}

// bytePrefilter searches for any of a set of single bytes.
type bytePrefilter struct {
	needles  []byte
	table    *[256]bool
	complete bool
}

func newBytePrefilter(needles []byte, complete bool) Prefilter {
	p := &bytePrefilter{needles: needles, complete: complete}
	if len(needles) > 3 {
		p.table = new([256]bool)
		for _, b := range needles {
			p.table[b] = true
		}
	}
	return p
}

// Find implements Prefilter.Find using the simd byte searches.
func (p *bytePrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	h := haystack[start:]
	var idx int
	switch len(p.needles) {
	case 1:
		idx = simd.Memchr(h, p.needles[0])
	case 2:
		idx = simd.Memchr2(h, p.needles[0], p.needles[1])
	case 3:
		idx = simd.Memchr3(h, p.needles[0], p.needles[1], p.needles[2])
	default:
		idx = simd.MemchrInTable(h, p.table)
	}
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *bytePrefilter) IsComplete() bool {
	return p.complete
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *bytePrefilter) HeapBytes() int {
	n := len(p.needles)
	if p.table != nil {
		n += len(p.table)
	}
	return n
}

// memmemPrefilter searches for a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

// newMemmemPrefilter copies needle so the prefilter does not alias the
// literal sequence.
func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	needleCopy := make([]byte, len(needle))
	copy(needleCopy, needle)
	return &memmemPrefilter{needle: needleCopy, complete: complete}
}

// Find implements Prefilter.Find using simd.Memmem.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := simd.Memmem(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}

// ahoCorasickPrefilter searches for many literals at once.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	size     int
	complete bool
}

func newAhoCorasickPrefilter(seq *literal.Seq, complete bool) (Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	size := 0
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Bytes(i)
		builder.AddPattern(lit)
		size += len(lit)
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{auto: auto, size: size, complete: complete}, nil
}

// Find implements Prefilter.Find. The automaton reports the leftmost match.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.IsComplete.
func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

// HeapBytes implements Prefilter.HeapBytes. It counts the pattern bytes
// only; the automaton does not report its own size.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.size
}
