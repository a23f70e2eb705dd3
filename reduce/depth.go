package reduce

import (
	"github.com/npillmayer/schuko/gconf"
)

// defaultMaxDepth bounds Tar's recursion when neither gconf nor the
// environment configures "nock.max-depth". The calculus is
// Turing-complete: termination is not guaranteed, and a host-stack
// guard converting runaway recursion into a stuck Error is an
// implementation escape hatch, not a semantic rule of the reducer
// itself.
const defaultMaxDepth = 1 << 20

func maxDepth() int {
	if d := gconf.GetInt("nock.max-depth"); d > 0 {
		return d
	}
	return defaultMaxDepth
}

func panicOnStuck() bool {
	return gconf.GetBool("nock.panic-on-stuck")
}
