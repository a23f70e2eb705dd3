package reduce

import (
	"github.com/nockcore/nock/noun"
)

// Tar is the universal reducer: it interprets formula against subject.
// formula must be either Cell(op, args) — an "auto-cons" formula, when
// op is itself a Cell — or Cell(Atom(opcode), args). Twelve opcodes
// are defined, OpSlot through OpHint; any other shape produces a
// stuck Error.
func Tar(subject, formula noun.Datum) (noun.Datum, error) {
	return tar(subject, formula, 0)
}

func tar(subject, formula noun.Datum, depth int) (noun.Datum, error) {
	if depth >= maxDepth() {
		inProgress := noun.Cell(subject, formula)
		tracer().Errorf("tar: recursion depth exceeded %d at %s", maxDepth(), inProgress.Digest())
		if panicOnStuck() {
			panic("nock: recursion depth exceeded")
		}
		return noun.Datum{}, noun.Stuck(inProgress)
	}
	depth++

	if !formula.IsCell() {
		input := noun.Cell(subject, formula)
		tracer().Errorf("tar(%s): formula is not a cell", input)
		return noun.Datum{}, noun.Stuck(input)
	}
	head, _ := formula.Head()
	tail, _ := formula.Tail()

	if head.IsCell() {
		// Auto-cons: [a [[b c] d]] -> Cell(tar([a [b c]]), tar([a d]))
		left, err := tar(subject, head, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		right, err := tar(subject, tail, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		return noun.Cell(left, right), nil
	}

	op, _ := head.N()
	switch OpCode(op) {

	case OpSlot: // [a [0 b]] -> net([b a])
		return Net(noun.Cell(tail, subject))

	case OpQuote: // [a [1 b]] -> b
		return tail, nil

	case OpEval: // [a [2 [b c]]] -> tar([tar([a b]) tar([a c])])
		b, c, err := pair(tail)
		if err != nil {
			return noun.Datum{}, err
		}
		newSubject, err := tar(subject, b, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		newFormula, err := tar(subject, c, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		return tar(newSubject, newFormula, depth)

	case OpIsCell: // [a [3 b]] -> wut(tar([a b]))
		v, err := tar(subject, tail, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		return noun.Wut(v)

	case OpInc: // [a [4 b]] -> lus(tar([a b]))
		v, err := tar(subject, tail, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		return noun.Lus(v)

	case OpEq: // [a [5 [b c]]] -> tis([tar([a b]) tar([a c])])
		b, c, err := pair(tail)
		if err != nil {
			return noun.Datum{}, err
		}
		u, err := tar(subject, b, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		v, err := tar(subject, c, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		return noun.Tis(noun.Cell(u, v))

	case OpIf: // [a [6 [b [c d]]]]
		return tarIf(subject, tail, depth)

	case OpCompose: // [a [7 [b c]]] -> tar([tar([a b]) c])
		b, c, err := pair(tail)
		if err != nil {
			return noun.Datum{}, err
		}
		newSubject, err := tar(subject, b, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		return tar(newSubject, c, depth)

	case OpPush: // [a [8 [b c]]] -> tar([Cell(tar([a b]) a) c])
		b, c, err := pair(tail)
		if err != nil {
			return noun.Datum{}, err
		}
		v, err := tar(subject, b, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		return tar(noun.Cell(v, subject), c, depth)

	case OpInvoke: // [a [9 [b c]]] -> tar([tar([a c]) [2 [[0 1] [0 b]]]])
		b, c, err := pair(tail)
		if err != nil {
			return noun.Datum{}, err
		}
		core, err := tar(subject, c, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		arm := noun.Cell(noun.Atom(2), noun.Cell(noun.Cell(noun.Atom(0), noun.Atom(1)), noun.Cell(noun.Atom(0), b)))
		return tar(core, arm, depth)

	case OpEdit: // [a [10 [[b c] d]]] -> hax([b [tar([a c]) tar([a d])]])
		bc, d, err := pair(tail)
		if err != nil {
			return noun.Datum{}, err
		}
		b, c, err := pair(bc)
		if err != nil {
			return noun.Datum{}, err
		}
		replacement, err := tar(subject, c, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		tree, err := tar(subject, d, depth)
		if err != nil {
			return noun.Datum{}, err
		}
		return Hax(noun.Cell(b, noun.Cell(replacement, tree)))

	case OpHint: // [a [11 [b c]]] or [a [11 [[b c] d]]]
		return tarHint(subject, tail, depth)

	default:
		tracer().Errorf("tar(%s): opcode %d is out of range", formula, op)
		return noun.Datum{}, noun.Stuck(formula)
	}
}

// tarIf implements the macro expansion for opcode 6 literally: b is
// evaluated, doubly-incremented to fold a 0/1 result onto slot 2 or 3,
// and that slot is used twice — first against the constant pair [2 3]
// to validate it, then against [c d] to pick the untaken-yet branch,
// which is finally evaluated against the original subject. Nothing
// here special-cases the boolean, so a non-0/1 result for b fails the
// same way the literal expansion would, via Net, on the [2 3] or
// [c d] slot lookup.
func tarIf(subject, args noun.Datum, depth int) (noun.Datum, error) {
	b, cd, err := pair(args)
	if err != nil {
		return noun.Datum{}, err
	}
	c, d, err := pair(cd)
	if err != nil {
		return noun.Datum{}, err
	}
	doubleInc := noun.Cell(noun.Atom(4), noun.Cell(noun.Atom(4), b))
	folded, err := tar(subject, doubleInc, depth)
	if err != nil {
		return noun.Datum{}, err
	}
	slot, err := Net(noun.Cell(folded, noun.Cell(noun.Atom(2), noun.Atom(3))))
	if err != nil {
		return noun.Datum{}, err
	}
	chosen, err := Net(noun.Cell(slot, noun.Cell(c, d)))
	if err != nil {
		return noun.Datum{}, err
	}
	return tar(subject, chosen, depth)
}

// tarHint implements opcode 11. When the hint head is an Atom the rest
// of args is the real formula and nothing is evaluated for effect;
// when it is a Cell, its second element is evaluated purely for effect
// (and its result discarded) before the real formula is evaluated.
func tarHint(subject, args noun.Datum, depth int) (noun.Datum, error) {
	head, rest, err := pair(args)
	if err != nil {
		return noun.Datum{}, err
	}
	if head.IsAtom() {
		return tar(subject, rest, depth)
	}
	_, effect, err := pair(head)
	if err != nil {
		return noun.Datum{}, err
	}
	if _, err := tar(subject, effect, depth); err != nil {
		return noun.Datum{}, err
	}
	return tar(subject, rest, depth)
}

// pair splits d into its head and tail, or reports a stuck Error
// carrying d if it is not a Cell — raised whenever a formula's spine
// is missing an argument.
func pair(d noun.Datum) (noun.Datum, noun.Datum, error) {
	h, ok := d.Head()
	if !ok {
		return noun.Datum{}, noun.Datum{}, noun.Stuck(d)
	}
	t, _ := d.Tail()
	return h, t, nil
}
