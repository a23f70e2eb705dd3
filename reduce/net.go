package reduce

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/nockcore/nock/noun"
)

// Net reads a sub-datum of a tree by a positive-integer path. input
// must be Cell(Atom(i), subject) with i >= 1:
//
//	[1 a]          -> a
//	[2 [b c]]      -> b
//	[3 [b c]]      -> c
//	[i a], i > 3   -> let r = Net([i/2 a]); Net([2+(i%2) r])
//	[0 a]          -> stuck, carrying Atom(0)
//	anything else  -> stuck
//
// The path i, read as a noun.Slot, encodes a binary-tree walk: its
// Parity at each level is the bit to take (0 means "take head", 1
// means "take tail"), and its Half is the parent address one level up.
// Rather than the doubly-recursive formulation above, Net walks the
// Slot down to the root on an explicit stack and replays the bits
// iteratively: path lengths are proportional to log2(i), and this
// avoids growing the Go call stack for addresses with long paths.
func Net(input noun.Datum) (noun.Datum, error) {
	if !input.IsCell() {
		tracer().Errorf("net(%s): input is not a cell", input)
		return noun.Datum{}, noun.Stuck(input)
	}
	addr, _ := input.Head()
	subject, _ := input.Tail()
	if addr.IsCell() {
		tracer().Errorf("net(%s): address must be an atom", input)
		return noun.Datum{}, noun.Stuck(addr)
	}
	i, _ := addr.N()
	if i == 0 {
		tracer().Errorf("net(%s): slot 0 is not addressable", input)
		return noun.Datum{}, noun.Stuck(noun.Atom(0))
	}

	steps := arraystack.New()
	for s := noun.Slot(i); !s.IsRoot(); s = s.Half() {
		steps.Push(s.Parity())
	}

	cur := subject
	for !steps.Empty() {
		v, _ := steps.Pop()
		if v.(uint64) == 0 {
			head, ok := cur.Head()
			if !ok {
				tracer().Errorf("net(%s): expected a cell at %s, got an atom", input, cur)
				return noun.Datum{}, noun.Stuck(cur)
			}
			cur = head
		} else {
			tail, ok := cur.Tail()
			if !ok {
				tracer().Errorf("net(%s): expected a cell at %s, got an atom", input, cur)
				return noun.Datum{}, noun.Stuck(cur)
			}
			cur = tail
		}
	}
	tracer().Debugf("net(%s) -> %s", input, cur)
	return cur, nil
}
