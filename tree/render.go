package tree

import (
	"fmt"
	"strings"
)

// Render produces a human-readable ASCII dump of the tree for debugging,
// one line per node, indented by depth, each node shown as its centroid
// index (and radius if withRadius is set). Supplemental feature grounded on the original
// engine's kmed.rs::Node::draw, simplified to drop the highlight/prune
// machinery (which existed there only to overlay a specific query's scan
// trace onto the dump — not part of this package's public surface).
func (t *Tree) Render(withRadius bool) string {
	if t == nil || t.Root == nil {
		return ""
	}
	var lines []string
	t.Root.render(0, withRadius, &lines)
	return strings.Join(lines, "\n")
}

func (n *Node) render(depth int, withRadius bool, lines *[]string) {
	indent := strings.Repeat("  ", depth)
	label := fmt.Sprintf("%s(%d)", indent, n.CentroidIndex)
	if withRadius {
		label = fmt.Sprintf("%s[r:%v]", label, n.Radius.To())
	}
	*lines = append(*lines, label)
	for _, c := range n.Children {
		c.Node.render(depth+1, withRadius, lines)
	}
}
