package atom

import (
	"errors"
	"math"
	"sync"

	"github.com/coregx/atomre/internal/conv"
)

// ErrChainFull is returned by Push once a chain holds its maximum number of
// atoms.
var ErrChainFull = errors.New("atom chain is full")

// Handle addresses a node in a chain's arena.
type Handle uint32

// NoAtom is the handle that follows the last node of a chain.
const NoAtom Handle = math.MaxUint32

type node struct {
	atom Atom
	next Handle
}

// nodePool recycles arena storage between compile calls. Only the backing
// slices are pooled; a Chain value is never reused, so a stale *Chain cannot
// release storage that another chain owns.
var nodePool = sync.Pool{
	New: func() any {
		nodes := make([]node, 0, 16)
		return &nodes
	},
}

// Clone returns a deep copy of the atom, including the contents of its set.
func (a Atom) Clone() Atom {
	a.Set = a.Set.Clone()
	return a
}

// Chain is an ordered, singly linked sequence of atoms representing one
// compiled pattern.
//
// A chain is owned by the call that created it and must be released exactly
// once. It is not safe for concurrent use.
type Chain struct {
	nodes    []node
	head     Handle
	tail     Handle
	maxAtoms int
	released bool
}

// NewChain returns an empty chain that accepts at most maxAtoms atoms.
// A non-positive maxAtoms means no limit besides the handle space.
func NewChain(maxAtoms int) *Chain {
	if maxAtoms <= 0 || maxAtoms > math.MaxInt32 {
		maxAtoms = math.MaxInt32
	}
	nodes := nodePool.Get().(*[]node)
	return &Chain{
		nodes:    (*nodes)[:0],
		head:     NoAtom,
		tail:     NoAtom,
		maxAtoms: maxAtoms,
	}
}

// Push allocates a node for a and links it after the current tail.
// The chain takes ownership of a.Set.
func (c *Chain) Push(a Atom) (Handle, error) {
	if c.released {
		panic("atom: Push on released chain")
	}
	if len(c.nodes) >= c.maxAtoms {
		return NoAtom, ErrChainFull
	}

	h := Handle(conv.IntToUint32(len(c.nodes)))
	c.nodes = append(c.nodes, node{atom: a, next: NoAtom})
	if c.head == NoAtom {
		c.head = h
	} else {
		c.nodes[c.tail].next = h
	}
	c.tail = h
	return h, nil
}

// Head returns the first node, or NoAtom for an empty chain.
func (c *Chain) Head() Handle {
	return c.head
}

// Next returns the node after h, or NoAtom.
func (c *Chain) Next(h Handle) Handle {
	return c.nodes[h].next
}

// At returns the atom stored at h. The pointer is valid until Release.
func (c *Chain) At(h Handle) *Atom {
	return &c.nodes[h].atom
}

// Len returns the number of atoms in the chain.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Owned returns how many atoms and how many character sets the chain
// currently owns.
func (c *Chain) Owned() (atoms, sets int) {
	for h := c.head; h != NoAtom; h = c.nodes[h].next {
		atoms++
		if c.nodes[h].atom.Set != nil {
			sets++
		}
	}
	return atoms, sets
}

// Released reports whether Release has been called.
func (c *Chain) Released() bool {
	return c.released
}

// Release frees every atom of the chain, walking from head to tail and
// clearing each owned set before dropping the atom that holds it. Calling
// Release more than once is a no-op.
func (c *Chain) Release() {
	if c.released {
		return
	}
	c.released = true

	for h := c.head; h != NoAtom; {
		n := &c.nodes[h]
		next := n.next
		if n.atom.Set != nil {
			n.atom.Set.Clear()
		}
		*n = node{}
		h = next
	}

	nodes := c.nodes[:0]
	c.nodes = nil
	c.head = NoAtom
	c.tail = NoAtom
	nodePool.Put(&nodes)
}
