package noun

// Wut ("?") is the is-cell predicate: Ok(0) for a Cell, Ok(1) for an
// Atom. It never fails.
func Wut(x Datum) (Datum, error) {
	if x.IsCell() {
		tracer().Debugf("wut(%s) -> 0 (cell)", x)
		return Atom(0), nil
	}
	tracer().Debugf("wut(%s) -> 1 (atom)", x)
	return Atom(1), nil
}

// Lus ("+") is the successor: Atom(n) reduces to Atom(n+1); a Cell is
// stuck. Overflow wraps per Go's uint64 semantics (see DESIGN.md for
// the reasoning).
func Lus(x Datum) (Datum, error) {
	n, ok := x.N()
	if !ok {
		tracer().Errorf("lus(%s): cell has no successor", x)
		return Datum{}, Stuck(x)
	}
	return Atom(n + 1), nil
}

// Tis ("=") is structural equality over a pair: Cell(a, b) reduces to
// Atom(0) if a equals b, Atom(1) otherwise. An Atom is stuck — there is
// no pair to compare.
func Tis(x Datum) (Datum, error) {
	head, ok := x.Head()
	if !ok {
		tracer().Errorf("tis(%s): atom has no pair to compare", x)
		return Datum{}, Stuck(x)
	}
	tail, _ := x.Tail()
	if head.Equal(tail) {
		return Atom(0), nil
	}
	return Atom(1), nil
}
