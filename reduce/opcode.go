package reduce

//go:generate stringer -type OpCode

// OpCode identifies one of the twelve reduction rules Tar dispatches
// on: the first Atom of a formula whose head is not itself a Cell.
// Values outside 0-11 are a stuck formula.
type OpCode int

const (
	OpSlot    OpCode = iota // 0: read a slot of the subject
	OpQuote                 // 1: return the formula's argument unchanged
	OpEval                  // 2: evaluate a formula built from two sub-formulas
	OpIsCell                // 3: Wut of a sub-evaluation
	OpInc                   // 4: Lus of a sub-evaluation
	OpEq                    // 5: Tis of two sub-evaluations
	OpIf                    // 6: branch on a 0/1 condition, macro-encoded via OpInc
	OpCompose               // 7: evaluate b against a, then c against that result
	OpPush                  // 8: push a new subject frame, then evaluate c
	OpInvoke                // 9: build a core at c, invoke the arm at slot b
	OpEdit                  // 10: Hax with both replacement and tree computed
	OpHint                  // 11: evaluate (or skip) a hint, keep the real value
)
