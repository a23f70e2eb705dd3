package nock

import (
	"github.com/nockcore/nock/noun"
	"github.com/nockcore/nock/reduce"
)

// Slot re-exports noun.Slot, the tree-addressing type that Net and Hax
// in package reduce operate on directly.
type Slot = noun.Slot

// Reduce interprets (subject, formula) and applies the universal
// reducer (Tar) to it, the single external entry point for evaluating
// a formula against a subject.
func Reduce(subject, formula noun.Datum) (noun.Datum, error) {
	return reduce.Tar(subject, formula)
}
