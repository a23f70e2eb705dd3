package noun

import "fmt"

// Slot is a positive-integer path addressing a sub-datum of a tree.
// Read most-significant-first after the leading 1, a 0 bit means
// "take head", a 1 bit means "take tail"; package reduce's Net and Hax
// walk a Slot directly rather than a bare integer. A Slot of 0 is
// never a valid address.
type Slot uint64

// IsRoot reports whether s addresses the whole subject (slot 1).
func (s Slot) IsRoot() bool {
	return s == 1
}

// Parity returns 0 if s is even, 1 if s is odd — which child ("head"
// or "tail") s was reached through at the bottom of its path.
func (s Slot) Parity() uint64 {
	return uint64(s) % 2
}

// Half returns s/2, the parent address s was derived from in the
// doubly-recursive formulation of the Net/Hax rules.
func (s Slot) Half() Slot {
	return Slot(uint64(s) / 2)
}

func (s Slot) String() string {
	return fmt.Sprintf("%d", uint64(s))
}
