package dom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump renders the subtree as an ASCII tree for diagnostics.
func Dump(n *Node) string {
	tree := treeprint.NewWithRoot(nodeLabel(n))
	for _, c := range n.Children {
		dumpInto(tree, c)
	}
	return tree.String()
}

func dumpInto(branch treeprint.Tree, n *Node) {
	if len(n.Children) == 0 {
		branch.AddNode(nodeLabel(n))
		return
	}
	sub := branch.AddBranch(nodeLabel(n))
	for _, c := range n.Children {
		dumpInto(sub, c)
	}
}

func nodeLabel(n *Node) string {
	switch n.Kind {
	case KindText:
		return fmt.Sprintf("#text %q", n.Text)
	case KindRaw:
		return fmt.Sprintf("#raw %q", n.Text)
	}
	if len(n.Attrs) == 0 {
		return "<" + n.Tag + ">"
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, n.Attrs[k])
	}
	b.WriteByte('>')
	return b.String()
}
