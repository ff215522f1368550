package diag

import (
	"strings"

	"github.com/katalvlaran/vecc/tree"
)

// describe renders a compact, one-line approximation of n for diagnostic
// messages: a leaf prints its value, an inner node prints its kind and
// the description of each child, parenthesized.
func describe(n *tree.Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		if n.Value != "" {
			return n.Value
		}

		return string(n.Kind)
	}

	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = describe(c)
	}

	return string(n.Kind) + "(" + strings.Join(parts, ", ") + ")"
}
