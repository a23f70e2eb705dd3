/*
Package reduce implements the tree-addressing primitives and the
universal reducer of the calculus: Net (slot read), Hax (slot edit) and
Tar (the twelve-opcode formula interpreter). Together with package noun
these form a mutually recursive rewrite system: Tar invokes itself,
Wut, Lus, Tis, Net and Hax; Hax invokes Net and itself; Net invokes
itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package reduce

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nock.reduce'.
func tracer() tracing.Trace {
	return tracing.Select("nock.reduce")
}
