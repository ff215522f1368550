package value_test

import (
	"testing"

	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
	"github.com/stretchr/testify/require"
)

func renderKinds(n *tree.Node) []string {
	var kinds []string
	n.Walk(func(node *tree.Node) bool {
		kinds = append(kinds, string(node.Kind))
		return true
	})

	return kinds
}

func TestNumEvaluateLeaf(t *testing.T) {
	n := value.FromLiteral("3")
	got := n.Evaluate()
	require.Equal(t, tree.KindNumber, got.Kind)
	require.Equal(t, "3", got.Value)
}

func TestNumUnaryQueues(t *testing.T) {
	n := value.FromVariable("x").Unary(value.OpNeg)
	got := n.Evaluate()
	require.Equal(t, tree.Kind("neg"), got.Kind)
	require.Len(t, got.Children, 1)
	require.Equal(t, "x", got.Children[0].Value)
}

func TestNumBinaryQueues(t *testing.T) {
	n := value.FromVariable("x").Binary(value.OpAdd, value.FromLiteral("1"))
	got := n.Evaluate()
	require.Equal(t, tree.Kind("add"), got.Kind)
	require.Equal(t, "x", got.Children[0].Value)
	require.Equal(t, "1", got.Children[1].Value)
}

func TestNumImmutability(t *testing.T) {
	base := value.FromVariable("x")
	a := base.Unary(value.OpNeg)
	b := base.Unary(value.OpAbs)

	require.Equal(t, tree.Kind("neg"), a.Evaluate().Kind)
	require.Equal(t, tree.Kind("abs"), b.Evaluate().Kind)
}

func TestCscRewritesToReciprocalOfSin(t *testing.T) {
	n := value.FromVariable("z").Unary("csc")
	got := n.Evaluate()
	require.Equal(t, tree.Kind("div"), got.Kind)
	require.Equal(t, "1", got.Children[0].Value)
	require.Equal(t, tree.Kind("sin"), got.Children[1].Kind)
}

func TestArccscRewritesToReciprocalOfArcsin(t *testing.T) {
	n := value.FromVariable("z").Unary("arccsc")
	got := n.Evaluate()
	require.Equal(t, tree.Kind("div"), got.Kind)
	require.Equal(t, tree.Kind("arcsin"), got.Children[1].Kind)
}

func TestNandRewritesToNotAnd(t *testing.T) {
	n := value.FromVariable("a").Binary("nand", value.FromVariable("b"))
	got := n.Evaluate()
	require.Equal(t, tree.Kind("not"), got.Kind)
	require.Equal(t, tree.Kind("and"), got.Children[0].Kind)
}

func TestXorRewritesToBaseOps(t *testing.T) {
	n := value.FromVariable("a").Binary("xor", value.FromVariable("b"))
	got := n.Evaluate()
	require.Equal(t, tree.Kind("and"), got.Kind)
	require.Equal(t, tree.Kind("or"), got.Children[0].Kind)
	require.Equal(t, tree.Kind("not"), got.Children[1].Kind)
}

func TestLnSeriesShape(t *testing.T) {
	n := value.FromVariable("z").Unary("ln")
	got := n.Evaluate()
	// outermost op is the final "mul" by 2.
	require.Equal(t, tree.Kind("mul"), got.Kind)
	require.Equal(t, "2", got.Children[1].Value)
	// left child is the accumulated sum of four terms, each an add.
	require.Equal(t, tree.Kind("add"), got.Children[0].Kind)
}

func TestAssignAllocatesScalarIdentifier(t *testing.T) {
	n := value.FromVariable("x").Unary(value.OpNeg)
	assignment, bound := n.Assign(7)
	require.Equal(t, tree.KindAssignment, assignment.Kind)
	require.Equal(t, "N7", assignment.Children[0].Value)
	require.Equal(t, tree.Kind("neg"), assignment.Children[1].Kind)

	// further use of `bound` references N7, not the neg expression again.
	reEvaluated := bound.Evaluate()
	require.Equal(t, tree.KindVariable, reEvaluated.Kind)
	require.Equal(t, "N7", reEvaluated.Value)
}
