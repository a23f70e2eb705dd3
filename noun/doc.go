/*
Package noun defines the datum model for the reduction core: a finite,
acyclic binary tree whose only shapes are an Atom (a fixed-width
non-negative integer) and a Cell (an ordered pair of two Data). It also
defines the single stuck-value error shape every reducer in package
reduce returns on failure.

Equality is structural, never identity-based: two Atoms are equal iff
their integers are equal; two Cells are equal iff their heads are equal
and their tails are equal; an Atom and a Cell are never equal.

Cells are right-biased for convenience: the sequence [a b c] denotes
[a [b c]]. List builds exactly that association.

Slot is the positive-integer tree-address type package reduce's Net
and Hax walk directly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package noun

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nock.noun'.
func tracer() tracing.Trace {
	return tracing.Select("nock.noun")
}
