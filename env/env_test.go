package env_test

import (
	"testing"

	"github.com/katalvlaran/vecc/env"
	"github.com/katalvlaran/vecc/macro"
	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
	"github.com/stretchr/testify/require"
)

func TestDefineScalarAllocatesMonotonicIndex(t *testing.T) {
	e := env.New()
	e1, idx0, err := e.DefineScalar("x", value.FromLiteral("1"))
	require.NoError(t, err)
	require.Equal(t, 0, idx0)

	e2, idx1, err := e1.DefineScalar("y", value.FromLiteral("2"))
	require.NoError(t, err)
	require.Equal(t, 1, idx1)

	// original environments are untouched by later mutation (copy-on-write).
	_, stillMissing := e.Lookup("x")
	require.False(t, stillMissing)
	b, found := e2.Lookup("x")
	require.True(t, found)
	require.Equal(t, value.SortScalar, b.Sort)
}

func TestDefineScalarRejectsRedefinition(t *testing.T) {
	e := env.New()
	e1, _, err := e.DefineScalar("x", value.FromLiteral("1"))
	require.NoError(t, err)

	_, _, err = e1.DefineScalar("x", value.FromLiteral("2"))
	require.ErrorIs(t, err, env.ErrVariableRedefined)
}

func TestDefineScalarRejectsCollisionWithMacroName(t *testing.T) {
	e := env.New()
	m, err := macro.New("f", nil, value.SortScalar, tree.NewLeaf(tree.KindNumberLiteral, "1"))
	require.NoError(t, err)
	e1, err := e.DefineMacro(m)
	require.NoError(t, err)

	_, _, err = e1.DefineScalar("f", value.FromLiteral("1"))
	require.ErrorIs(t, err, env.ErrNameCollidesWithMacro)
}

func TestDefineMacroRejectsCollisionWithVariableName(t *testing.T) {
	e := env.New()
	e1, _, err := e.DefineScalar("f", value.FromLiteral("1"))
	require.NoError(t, err)

	m, err := macro.New("f", nil, value.SortScalar, tree.NewLeaf(tree.KindNumberLiteral, "1"))
	require.NoError(t, err)
	_, err = e1.DefineMacro(m)
	require.ErrorIs(t, err, env.ErrNameCollidesWithVariable)
}

func TestDefineMacroRejectsMutualRecursion(t *testing.T) {
	callB := tree.NewLeaf(tree.KindMacroCall, "b")
	a, err := macro.New("a", nil, value.SortScalar, callB)
	require.NoError(t, err)
	callA := tree.NewLeaf(tree.KindMacroCall, "a")
	b, err := macro.New("b", nil, value.SortScalar, callA)
	require.NoError(t, err)

	e := env.New()
	e1, err := e.DefineMacro(a)
	require.NoError(t, err)
	_, err = e1.DefineMacro(b)
	require.ErrorIs(t, err, macro.ErrRecursion)
}

func TestDefineImportAndExportRejectTargetCollision(t *testing.T) {
	e := env.New()
	e1, err := e.DefineImport("x", "shared")
	require.NoError(t, err)

	_, err = e1.DefineExport("y", "shared")
	require.ErrorIs(t, err, env.ErrTargetCollision)
}

func TestDefineImportRejectsDuplicateAlias(t *testing.T) {
	e := env.New()
	e1, err := e.DefineImport("x", "a")
	require.NoError(t, err)

	_, err = e1.DefineImport("x", "b")
	require.ErrorIs(t, err, env.ErrDuplicateImportAlias)
}

func TestImportsAndExportsAreDefensiveCopies(t *testing.T) {
	e := env.New()
	e1, err := e.DefineImport("x", "target")
	require.NoError(t, err)

	got := e1.Imports()
	got["x"] = "mutated"

	got2 := e1.Imports()
	require.Equal(t, "target", got2["x"])
}
