// Package literal extracts the literal prefixes of compiled atom chains.
//
// Every match of a chain that starts with literal atoms (e.g. "he[lm]p.*")
// must begin with one of a small set of strings ("help", "hemp"), so a fast
// substring search can skip offsets where no match can start.
package literal

// Seq is a set of alternative literal prefixes. When the set is complete,
// the chain it came from matches exactly these strings and nothing else, so
// finding one is a match.
type Seq struct {
	lits     [][]byte
	complete bool
}

// NewSeq returns a sequence of lits. The slices are not copied.
func NewSeq(complete bool, lits ...[]byte) *Seq {
	return &Seq{lits: lits, complete: complete}
}

// Len returns the number of literals. A nil Seq is empty.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.lits)
}

// Bytes returns the i-th literal.
func (s *Seq) Bytes(i int) []byte {
	return s.lits[i]
}

func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// IsComplete reports whether the literals are whole matches.
// An empty sequence is never complete.
func (s *Seq) IsComplete() bool {
	return !s.IsEmpty() && s.complete
}

// MinLen returns the length of the shortest literal, or 0 when empty.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := len(s.lits[0])
	for _, b := range s.lits[1:] {
		n = min(n, len(b))
	}
	return n
}

// MaxLen returns the length of the longest literal, or 0 when empty.
func (s *Seq) MaxLen() int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		n = max(n, len(s.lits[i]))
	}
	return n
}

// LongestCommonPrefix returns a copy of the prefix shared by every literal.
// It is empty when the sequence is.
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return nil
	}
	n := len(s.lits[0])
	for _, b := range s.lits[1:] {
		n = min(n, len(b))
		for i := 0; i < n; i++ {
			if b[i] != s.lits[0][i] {
				n = i
				break
			}
		}
	}
	return append([]byte(nil), s.lits[0][:n]...)
}
