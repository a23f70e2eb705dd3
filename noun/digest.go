package noun

import (
	"github.com/cnf/structhash"
)

// digestShape is an exported mirror of Datum's shape, built purely so
// structhash (which hashes via reflection over exported fields) has
// something to hash; it never leaves this file.
type digestShape struct {
	Kind string
	N    uint64
	Head string
	Tail string
}

func (d Datum) shape() digestShape {
	s := digestShape{Kind: d.kind.String()}
	if d.kind == AtomKind {
		s.N = d.n
	} else {
		s.Head = d.head.Digest()
		s.Tail = d.tail.Digest()
	}
	return s
}

// Digest returns a short content hash of d, for logging large stuck
// trees without serializing the whole tree into a trace line. It is a
// diagnostic aid only: two structurally equal Datums always have equal
// digests, but Digest never influences reduction results — this is not
// memoization.
func (d Datum) Digest() string {
	hash, err := structhash.Hash(d.shape(), 1)
	if err != nil {
		tracer().Errorf("digest(%s) failed: %v", d, err)
		return "digest-error"
	}
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
