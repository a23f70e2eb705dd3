package reduce

import (
	"golang.org/x/exp/slices"

	"github.com/nockcore/nock/noun"
)

// Hax replaces the sub-datum at a path with a new value, producing a
// new tree. input must be [Atom(i), [b c]] with i >= 1, where b is the
// replacement and c is the original tree:
//
//	[1 [b c]]                -> b
//	[n [b c]], n even, n > 0 -> Hax([n/2, [Cell(b, Net([n+1 c])), c]])
//	[n [b c]], n odd, n >= 3 -> Hax([(n-1)/2, [Cell(Net([n-1 c]), b), c]])
//	[Atom(0), ...]           -> stuck, carrying Atom(0)
//	anything else            -> stuck
//
// At every level the sibling is read from c, the UNMODIFIED original
// tree, never from the tree being built up. Go's value semantics make
// that safe without an explicit clone: Cell never mutates its
// children, so c keeps denoting the tree as it stood before this call.
func Hax(input noun.Datum) (noun.Datum, error) {
	if !input.IsCell() {
		tracer().Errorf("hax(%s): input is not a cell", input)
		return noun.Datum{}, noun.Stuck(input)
	}
	addr, _ := input.Head()
	bc, _ := input.Tail()
	if addr.IsCell() {
		tracer().Errorf("hax(%s): address must be an atom", input)
		return noun.Datum{}, noun.Stuck(addr)
	}
	n, _ := addr.N()
	if n == 0 {
		tracer().Errorf("hax(%s): slot 0 is not addressable", input)
		return noun.Datum{}, noun.Stuck(noun.Atom(0))
	}
	if !bc.IsCell() {
		tracer().Errorf("hax(%s): replacement/tree pair is not a cell", input)
		return noun.Datum{}, noun.Stuck(bc)
	}
	b, _ := bc.Head()
	c, _ := bc.Tail()

	slot := noun.Slot(n)
	if slot.IsRoot() {
		return b, nil
	}

	even := slot.Parity() == 0
	siblingAddr := uint64(slot) + 1
	if !even {
		siblingAddr = uint64(slot) - 1
	}
	sibling, err := Net(noun.Cell(noun.Atom(siblingAddr), c))
	if err != nil {
		return noun.Datum{}, err
	}

	// b and sibling go head-then-tail on an even slot, tail-then-head
	// on an odd one; slices.Reverse flips the pair for the odd case.
	ordered := []noun.Datum{b, sibling}
	if !even {
		slices.Reverse(ordered)
	}
	newB := noun.Cell(ordered[0], ordered[1])

	next := slot.Half()
	tracer().Debugf("hax(%s): n=%d -> recurse at %s with b=%s", input, n, next, newB)
	return Hax(noun.Cell(noun.Atom(uint64(next)), noun.Cell(newB, c)))
}
