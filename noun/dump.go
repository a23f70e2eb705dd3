package noun

import (
	"github.com/pterm/pterm"
)

// DumpTree renders d as an indented tree for debugging and returns it
// as a string; it never writes to stdout, and no reducer calls it, so
// it has no effect on reduction results. It is not a general-purpose
// pretty-printer for callers, just debug tooling.
func (d Datum) DumpTree() string {
	root := d.treeNode()
	rendered, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		tracer().Errorf("dump tree for %s failed: %v", d, err)
		return d.String()
	}
	return rendered
}

func (d Datum) treeNode() pterm.TreeNode {
	if d.kind == AtomKind {
		return pterm.TreeNode{Text: d.String()}
	}
	return pterm.TreeNode{
		Text: "cell",
		Children: []pterm.TreeNode{
			d.head.treeNode(),
			d.tail.treeNode(),
		},
	}
}
