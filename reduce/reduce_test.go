package reduce

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/nockcore/nock/noun"
)

func mustEqual(t *testing.T, got noun.Datum, err error, want noun.Datum) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNetScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nock.reduce")
	defer teardown()

	subject := noun.List(noun.Atom(531), noun.Atom(25), noun.Atom(99))

	got, err := Net(noun.Cell(noun.Atom(1), subject))
	mustEqual(t, got, err, subject)

	got, err = Net(noun.Cell(noun.Atom(6), subject))
	mustEqual(t, got, err, noun.Atom(25))

	got, err = Net(noun.Cell(noun.Atom(3), subject))
	mustEqual(t, got, err, noun.List(noun.Atom(25), noun.Atom(99)))
}

func TestNetSlotZeroIsStuck(t *testing.T) {
	_, err := Net(noun.Cell(noun.Atom(0), noun.Atom(1)))
	if err == nil {
		t.Fatalf("expected stuck error")
	}
	if !err.(*noun.Error).Stuck.Equal(noun.Atom(0)) {
		t.Errorf("stuck value = %v, want Atom(0)", err)
	}
}

func TestHaxScenarios(t *testing.T) {
	got, err := Hax(noun.Cell(noun.Atom(2), noun.List(noun.Atom(11), noun.Atom(22), noun.Atom(33))))
	mustEqual(t, got, err, noun.List(noun.Atom(11), noun.Atom(33)))

	got, err = Hax(noun.Cell(noun.Atom(3), noun.List(noun.Atom(11), noun.Atom(22), noun.Atom(33))))
	mustEqual(t, got, err, noun.List(noun.Atom(22), noun.Atom(11)))

	got, err = Hax(noun.Cell(noun.Atom(5), noun.Cell(noun.Atom(11), noun.Cell(noun.List(noun.Atom(22), noun.Atom(33)), noun.Atom(44)))))
	mustEqual(t, got, err, noun.Cell(noun.List(noun.Atom(22), noun.Atom(11)), noun.Atom(44)))
}

func TestNetHaxRoundTrip(t *testing.T) {
	tree := noun.List(noun.Atom(531), noun.Atom(25), noun.Atom(99))
	for _, i := range []uint64{1, 2, 3, 6, 7} {
		w := noun.Atom(1000 + i)
		edited, err := Hax(noun.Cell(noun.Atom(i), noun.Cell(w, tree)))
		if err != nil {
			t.Fatalf("hax(%d): %v", i, err)
		}
		got, err := Net(noun.Cell(noun.Atom(i), edited))
		if err != nil {
			t.Fatalf("net(%d) after hax: %v", i, err)
		}
		if !got.Equal(w) {
			t.Errorf("round-trip at slot %d: got %s, want %s", i, got, w)
		}
	}
}

func TestTarIdentityAndQuote(t *testing.T) {
	subject := noun.Atom(42)

	got, err := Tar(subject, noun.Cell(noun.Atom(0), noun.Atom(1)))
	mustEqual(t, got, err, subject)

	got, err = Tar(subject, noun.Cell(noun.Atom(1), noun.Atom(99)))
	mustEqual(t, got, err, noun.Atom(99))
}

func TestTarIncOfSelf(t *testing.T) {
	got, err := Tar(noun.Atom(42), noun.Cell(noun.Atom(4), noun.Cell(noun.Atom(0), noun.Atom(1))))
	mustEqual(t, got, err, noun.Atom(43))
}

func TestTarOpcode2Eval(t *testing.T) {
	// [a [2 [[1 5] [1 [1 6]]]]]: evaluate b against a to get a new
	// subject (5), evaluate c against a to get a new formula ([1 6],
	// itself produced by quoting it), then evaluate that formula
	// against the new subject.
	formula := noun.Cell(noun.Atom(2), noun.Cell(
		noun.Cell(noun.Atom(1), noun.Atom(5)),
		noun.Cell(noun.Atom(1), noun.Cell(noun.Atom(1), noun.Atom(6))),
	))
	got, err := Tar(noun.Atom(7), formula)
	mustEqual(t, got, err, noun.Atom(6))
}

func TestTarOpcode3IsCell(t *testing.T) {
	// [a [3 [1 0]]]: b quotes the atom 0, so isCell(0) = 1 (it's an atom).
	got, err := Tar(noun.Atom(42), noun.Cell(noun.Atom(3), noun.Cell(noun.Atom(1), noun.Atom(0))))
	mustEqual(t, got, err, noun.Atom(1))

	// [a [3 [0 1]]] against a cell subject: b fetches the whole
	// subject via slot 1, which is itself a cell, so isCell = 0.
	subject := noun.Cell(noun.Atom(1), noun.Atom(2))
	got, err = Tar(subject, noun.Cell(noun.Atom(3), noun.Cell(noun.Atom(0), noun.Atom(1))))
	mustEqual(t, got, err, noun.Atom(0))
}

func TestTarOpcode5Eq(t *testing.T) {
	eqFormula := noun.Cell(noun.Atom(5), noun.Cell(
		noun.Cell(noun.Atom(1), noun.Atom(1)),
		noun.Cell(noun.Atom(1), noun.Atom(1)),
	))
	got, err := Tar(noun.Atom(0), eqFormula)
	mustEqual(t, got, err, noun.Atom(0))

	neqFormula := noun.Cell(noun.Atom(5), noun.Cell(
		noun.Cell(noun.Atom(1), noun.Atom(1)),
		noun.Cell(noun.Atom(1), noun.Atom(2)),
	))
	got, err = Tar(noun.Atom(0), neqFormula)
	mustEqual(t, got, err, noun.Atom(1))
}

func TestTarConditional(t *testing.T) {
	subject := noun.Atom(42)
	trueCond := noun.List(noun.Atom(1), noun.Atom(0))
	falseCond := noun.List(noun.Atom(1), noun.Atom(1))
	branches := noun.List(noun.Cell(noun.Atom(1), noun.Atom(111)), noun.Cell(noun.Atom(1), noun.Atom(222)))

	formula := noun.Cell(noun.Atom(6), noun.Cell(trueCond, branches))
	got, err := Tar(subject, formula)
	mustEqual(t, got, err, noun.Atom(111))

	formula = noun.Cell(noun.Atom(6), noun.Cell(falseCond, branches))
	got, err = Tar(subject, formula)
	mustEqual(t, got, err, noun.Atom(222))
}

func TestTarAutoCons(t *testing.T) {
	subject := noun.Atom(7)
	formula := noun.Cell(
		noun.Cell(noun.Atom(1), noun.Atom(100)),
		noun.Cell(noun.Atom(1), noun.Atom(200)),
	)
	got, err := Tar(subject, formula)
	mustEqual(t, got, err, noun.Cell(noun.Atom(100), noun.Atom(200)))
}

func TestTarOpcodeOutOfRangeIsStuck(t *testing.T) {
	formula := noun.Cell(noun.Atom(12), noun.Atom(0))
	_, err := Tar(noun.Atom(1), formula)
	if err == nil {
		t.Fatalf("expected stuck error for opcode 12")
	}
	if !err.(*noun.Error).Stuck.Equal(formula) {
		t.Errorf("stuck value = %v, want %v", err, formula)
	}
}

func TestTarOpcode7Compose(t *testing.T) {
	// [a [7 [[0 1] [4 [0 1]]]]] pushes a through identity, then increments it.
	formula := noun.Cell(noun.Atom(7), noun.Cell(
		noun.Cell(noun.Atom(0), noun.Atom(1)),
		noun.Cell(noun.Atom(4), noun.Cell(noun.Atom(0), noun.Atom(1))),
	))
	got, err := Tar(noun.Atom(9), formula)
	mustEqual(t, got, err, noun.Atom(10))
}

func TestTarOpcode8Push(t *testing.T) {
	// [a [8 [[1 5] [4 [0 2]]]]] pushes the constant 5 as the new head of the
	// subject (old subject becomes the tail), then increments that head.
	formula := noun.Cell(noun.Atom(8), noun.Cell(
		noun.Cell(noun.Atom(1), noun.Atom(5)),
		noun.Cell(noun.Atom(4), noun.Cell(noun.Atom(0), noun.Atom(2))),
	))
	got, err := Tar(noun.Atom(0), formula)
	mustEqual(t, got, err, noun.Atom(6))
}

func TestTarOpcode9Invoke(t *testing.T) {
	// Build a one-arm core — Cell(arm, sample) — where arm is the
	// formula [4 [0 3]] (increment the sample living at slot 3), then
	// invoke that arm via slot 2 (the arm's own position in the core).
	arm := noun.Cell(noun.Atom(4), noun.Cell(noun.Atom(0), noun.Atom(3)))
	sample := noun.Atom(10)
	core := noun.Cell(arm, sample)

	formula := noun.Cell(noun.Atom(9), noun.Cell(
		noun.Atom(2),
		noun.Cell(noun.Atom(1), core),
	))
	got, err := Tar(noun.Atom(0), formula)
	mustEqual(t, got, err, noun.Atom(11))
}

func TestTarOpcode10Edit(t *testing.T) {
	// [a [10 [[b c] d]]]: edit the tree produced by d at slot b with
	// the replacement produced by c.
	tree := noun.List(noun.Atom(22), noun.Atom(33))
	formula := noun.Cell(noun.Atom(10), noun.Cell(
		noun.Cell(noun.Atom(2), noun.Cell(noun.Atom(1), noun.Atom(11))),
		noun.Cell(noun.Atom(1), tree),
	))
	got, err := Tar(noun.Atom(0), formula)
	mustEqual(t, got, err, noun.List(noun.Atom(11), noun.Atom(33)))
}

func TestTarOpcode11HintAtomSkipsEvaluation(t *testing.T) {
	// b (the hint tag) is a bare atom, so the rule is tar([a c]) directly:
	// nothing besides c is ever evaluated.
	formula := noun.Cell(noun.Atom(11), noun.Cell(noun.Atom(0), noun.Cell(noun.Atom(1), noun.Atom(7))))
	got, err := Tar(noun.Atom(42), formula)
	mustEqual(t, got, err, noun.Atom(7))
}

func TestTarOpcode11HintCellEvaluatesEffectAndDiscardsIt(t *testing.T) {
	formula := noun.Cell(noun.Atom(11), noun.Cell(
		noun.Cell(noun.Atom(0), noun.Cell(noun.Atom(1), noun.Atom(1))),
		noun.Cell(noun.Atom(1), noun.Atom(7)),
	))
	got, err := Tar(noun.Atom(42), formula)
	mustEqual(t, got, err, noun.Atom(7))
}

func TestTarMalformedFormulaIsStuck(t *testing.T) {
	_, err := Tar(noun.Atom(1), noun.Atom(2))
	if err == nil {
		t.Fatalf("expected stuck error for an atom formula")
	}
}
