package tree_test

import (
	"testing"

	"github.com/katalvlaran/vecc/tree"
	"github.com/stretchr/testify/require"
)

func TestNewLeafAndInner(t *testing.T) {
	leaf := tree.NewLeaf(tree.KindNumber, "3")
	require.True(t, leaf.IsLeaf())
	require.Nil(t, leaf.Parent)

	inner := tree.NewInner(tree.KindAssignment, leaf, tree.NewLeaf(tree.KindVariable, "x"))
	require.False(t, inner.IsLeaf())
	require.Equal(t, inner, leaf.Parent)
}

func TestAppendAndReplace(t *testing.T) {
	a := tree.NewLeaf(tree.KindNumber, "1")
	b := tree.NewLeaf(tree.KindNumber, "2")
	n := tree.NewInner(tree.KindAssignment, a)
	n.Append(b)
	require.Equal(t, []*tree.Node{a, b}, n.Children)
	require.Equal(t, n, b.Parent)

	c := tree.NewLeaf(tree.KindNumber, "3")
	require.NoError(t, n.ReplaceChildPtr(a, c))
	require.Equal(t, []*tree.Node{c, b}, n.Children)
	require.Nil(t, a.Parent)

	require.ErrorIs(t, n.ReplaceChildPtr(a, c), tree.ErrChildNotFound)
}

func TestRemoveChild(t *testing.T) {
	a := tree.NewLeaf(tree.KindNumber, "1")
	b := tree.NewLeaf(tree.KindNumber, "2")
	n := tree.NewInner(tree.KindAssignment, a, b)

	require.NoError(t, n.RemoveChild(0))
	require.Equal(t, []*tree.Node{b}, n.Children)
	require.Nil(t, a.Parent)

	require.ErrorIs(t, n.RemoveChild(5), tree.ErrChildIndexOutOfRange)
}

func TestCloneDetaches(t *testing.T) {
	a := tree.NewLeaf(tree.KindNumber, "1")
	n := tree.NewInner(tree.KindAssignment, a)

	clone := n.Clone()
	require.Nil(t, clone.Parent)
	require.Equal(t, clone, clone.Children[0].Parent)
	require.NotSame(t, n.Children[0], clone.Children[0])

	clone.Children[0].Reassign("9")
	require.Equal(t, "1", a.Value, "clone mutation must not leak into original")
}

func TestWalkPruning(t *testing.T) {
	leaf1 := tree.NewLeaf(tree.KindNumber, "1")
	leaf2 := tree.NewLeaf(tree.KindNumber, "2")
	mid := tree.NewInner(tree.KindAssignment, leaf2)
	root := tree.NewInner(tree.KindLine, leaf1, mid)

	var visited []string
	root.Walk(func(n *tree.Node) bool {
		visited = append(visited, string(n.Kind))
		return n != mid // prune mid's children
	})

	require.Equal(t, []string{"line", "number", "assignment"}, visited)
}
