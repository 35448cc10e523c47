package atom

import (
	"errors"
	"testing"
)

func pushAll(t *testing.T, c *Chain, atoms ...Atom) []Handle {
	t.Helper()
	hs := make([]Handle, 0, len(atoms))
	for _, a := range atoms {
		h, err := c.Push(a)
		if err != nil {
			t.Fatalf("Push(%s): %v", a.String(), err)
		}
		hs = append(hs, h)
	}
	return hs
}

func TestChain_PushOrder(t *testing.T) {
	c := NewChain(0)
	defer c.Release()

	pushAll(t, c, Anchor(), Literal('a'), StarOf(Literal('b')), EndAnchor())

	var kinds []Kind
	for h := c.Head(); h != NoAtom; h = c.Next(h) {
		kinds = append(kinds, c.At(h).Kind)
	}
	want := []Kind{KindAnchor, KindLiteral, KindStar, KindEndAnchor}
	if len(kinds) != len(want) {
		t.Fatalf("chain kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
}

func TestChain_Empty(t *testing.T) {
	c := NewChain(8)
	if c.Head() != NoAtom {
		t.Error("empty chain should have no head")
	}
	if atoms, sets := c.Owned(); atoms != 0 || sets != 0 {
		t.Errorf("Owned() = (%d, %d), want (0, 0)", atoms, sets)
	}
	c.Release()
}

func TestChain_Full(t *testing.T) {
	c := NewChain(2)
	defer c.Release()

	pushAll(t, c, Literal('a'), Literal('b'))
	if _, err := c.Push(Literal('c')); !errors.Is(err, ErrChainFull) {
		t.Fatalf("third Push error = %v, want ErrChainFull", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d after failed push, want 2", c.Len())
	}
}

// A `+` desugars into a base atom and a star holding a deep copy of the
// base's set. Releasing the chain must clear both sets exactly once and a
// repeated release must do nothing.
func TestChain_ReleaseClonedSet(t *testing.T) {
	c := NewChain(0)

	base := Set("bad")
	hs := pushAll(t, c, base, StarOf(base))

	baseSet := c.At(hs[0]).Set
	starSet := c.At(hs[1]).Set
	if baseSet == starSet {
		t.Fatal("base and star share a set")
	}

	if atoms, sets := c.Owned(); atoms != 2 || sets != 2 {
		t.Fatalf("Owned() = (%d, %d), want (2, 2)", atoms, sets)
	}

	c.Release()

	if !c.Released() {
		t.Error("Released() = false after Release")
	}
	if atoms, sets := c.Owned(); atoms != 0 || sets != 0 {
		t.Errorf("Owned() after release = (%d, %d), want (0, 0)", atoms, sets)
	}
	if !baseSet.IsEmpty() || !starSet.IsEmpty() {
		t.Error("release should clear every owned set")
	}
	if c.Len() != 0 {
		t.Errorf("Len() after release = %d, want 0", c.Len())
	}

	c.Release()
	if atoms, sets := c.Owned(); atoms != 0 || sets != 0 {
		t.Errorf("Owned() after second release = (%d, %d), want (0, 0)", atoms, sets)
	}
}

func TestChain_ReleaseDoesNotTouchNewChain(t *testing.T) {
	old := NewChain(0)
	pushAll(t, old, Literal('x'))
	old.Release()

	fresh := NewChain(0)
	defer fresh.Release()
	pushAll(t, fresh, Set("ab"), Literal('c'))

	// Storage may have come from the pool; the stale chain must not be able
	// to free it.
	old.Release()
	if atoms, sets := fresh.Owned(); atoms != 2 || sets != 1 {
		t.Fatalf("fresh.Owned() = (%d, %d), want (2, 1)", atoms, sets)
	}
	if !fresh.At(fresh.Head()).Set.Contains('a') {
		t.Error("fresh chain's set was cleared by a stale release")
	}
}

func TestChain_PushAfterReleasePanics(t *testing.T) {
	c := NewChain(0)
	c.Release()
	defer func() {
		if recover() == nil {
			t.Error("Push on a released chain should panic")
		}
	}()
	_, _ = c.Push(Literal('a'))
}

func TestChain_String(t *testing.T) {
	c := NewChain(0)
	pushAll(t, c, Anchor(), Literal('b'), StarOf(Literal('b')), Set("ad"), EndAnchor())

	want := "1: anchor\n" +
		"2: literal 'b'\n" +
		"3: star of literal 'b'\n" +
		"4: literal set[ad] size 2\n" +
		"5: end-anchor\n"
	if got := c.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	c.Release()
	if got := c.String(); got != "(released)\n" {
		t.Errorf("String() after release = %q", got)
	}

	empty := NewChain(0)
	defer empty.Release()
	if got := empty.String(); got != "(empty)\n" {
		t.Errorf("empty String() = %q", got)
	}
}
