package macro_test

import (
	"testing"

	"github.com/katalvlaran/vecc/macro"
	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
	"github.com/stretchr/testify/require"
)

func varRef(name string) *tree.Node {
	return tree.NewLeaf(tree.KindVariableRef, name)
}

func TestNewRejectsDuplicateParams(t *testing.T) {
	params := []macro.Param{
		{Name: "x", Sort: value.SortScalar},
		{Name: "x", Sort: value.SortScalar},
	}
	_, err := macro.New("dup", params, value.SortScalar, varRef("x"))
	require.ErrorIs(t, err, macro.ErrDuplicateParam)
}

func TestNewRejectsUnboundVariable(t *testing.T) {
	params := []macro.Param{{Name: "x", Sort: value.SortScalar}}
	body := tree.NewInner(tree.KindBinaryOp, varRef("x"), varRef("y"))
	body.Value = "add"
	_, err := macro.New("leaky", params, value.SortScalar, body)
	require.ErrorIs(t, err, macro.ErrUnboundVariable)
}

func TestNewAcceptsClosedBody(t *testing.T) {
	params := []macro.Param{
		{Name: "x", Sort: value.SortScalar},
		{Name: "y", Sort: value.SortScalar},
	}
	body := tree.NewInner(tree.KindBinaryOp, varRef("x"), varRef("y"))
	body.Value = "add"
	m, err := macro.New("sum2", params, value.SortScalar, body)
	require.NoError(t, err)
	require.Equal(t, "sum2", m.Name)
}

func TestCallsCollectsMacroCallNames(t *testing.T) {
	inner := tree.NewLeaf(tree.KindMacroCall, "helper")
	inner.Children = []*tree.Node{varRef("x")}
	outer := tree.NewInner(tree.KindUnaryOp, inner)
	outer.Value = "neg"

	m, err := macro.New("caller", []macro.Param{{Name: "x", Sort: value.SortScalar}}, value.SortScalar, outer)
	require.NoError(t, err)
	require.Equal(t, []string{"helper"}, m.Calls())
}

func TestSubstituteReplacesParametersCallByName(t *testing.T) {
	body := tree.NewInner(tree.KindBinaryOp, varRef("x"), varRef("y"))
	body.Value = "add"
	m, err := macro.New("sum2", []macro.Param{
		{Name: "x", Sort: value.SortScalar},
		{Name: "y", Sort: value.SortScalar},
	}, value.SortScalar, body)
	require.NoError(t, err)

	argX := tree.NewLeaf(tree.KindNumberLiteral, "3")
	argYInner := tree.NewLeaf(tree.KindVariableRef, "z")
	argY := tree.NewInner(tree.KindUnaryOp, argYInner)
	argY.Value = "neg"

	result := m.Substitute(map[string]*tree.Node{"x": argX, "y": argY})

	require.Equal(t, tree.KindBinaryOp, result.Kind)
	require.Equal(t, "add", result.Value)
	require.Equal(t, tree.KindNumberLiteral, result.Children[0].Kind)
	require.Equal(t, "3", result.Children[0].Value)
	require.Equal(t, tree.KindUnaryOp, result.Children[1].Kind)
	require.Equal(t, "neg", result.Children[1].Value)

	// original argument subtree is not aliased into the result.
	result.Children[0].Value = "999"
	require.Equal(t, "3", argX.Value)

	// substitution did not mutate the macro's own body.
	require.Equal(t, "x", body.Children[0].Value)
}

func TestSubstituteLeavesUnrelatedVariableRefsAlone(t *testing.T) {
	m, err := macro.New("identity", []macro.Param{{Name: "x", Sort: value.SortScalar}}, value.SortScalar, varRef("x"))
	require.NoError(t, err)

	result := m.Substitute(map[string]*tree.Node{"other": tree.NewLeaf(tree.KindNumberLiteral, "1")})
	require.Equal(t, tree.KindVariableRef, result.Kind)
	require.Equal(t, "x", result.Value)
}

func buildMacro(t *testing.T, name string, calls ...string) *macro.Macro {
	t.Helper()
	body := varRef("x")
	var tail *tree.Node = body
	for _, callee := range calls {
		call := tree.NewLeaf(tree.KindMacroCall, callee)
		call.Children = []*tree.Node{tail}
		tail = call
	}
	m, err := macro.New(name, []macro.Param{{Name: "x", Sort: value.SortScalar}}, value.SortScalar, tail)
	require.NoError(t, err)

	return m
}

func TestDetectRecursionAllowsAcyclicCallGraph(t *testing.T) {
	macros := map[string]*macro.Macro{
		"a": buildMacro(t, "a", "b"),
		"b": buildMacro(t, "b"),
	}
	require.NoError(t, macro.DetectRecursion(macros))
}

func TestDetectRecursionCatchesDirectSelfCall(t *testing.T) {
	macros := map[string]*macro.Macro{
		"a": buildMacro(t, "a", "a"),
	}
	err := macro.DetectRecursion(macros)
	require.ErrorIs(t, err, macro.ErrRecursion)
}

func TestDetectRecursionCatchesMutualRecursion(t *testing.T) {
	macros := map[string]*macro.Macro{
		"a": buildMacro(t, "a", "b"),
		"b": buildMacro(t, "b", "a"),
	}
	err := macro.DetectRecursion(macros)
	require.ErrorIs(t, err, macro.ErrRecursion)
}
