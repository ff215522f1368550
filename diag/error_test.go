package diag_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/vecc/diag"
	"github.com/katalvlaran/vecc/tree"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestReporterWrapsContext(t *testing.T) {
	r := diag.NewReporter()
	stmt := tree.NewLeaf(tree.KindVariable, "let-stmt")
	restoreStmt := r.EnterStatement(stmt)
	defer restoreStmt()

	expr := tree.NewLeaf(tree.KindNumber, "42")
	restoreExpr := r.EnterExpression(expr)
	defer restoreExpr()

	err := r.Wrap(diag.CategorySortMismatch, errBoom, "bad sort for %s", "V")
	require.Equal(t, diag.CategorySortMismatch, err.Category)
	require.Equal(t, stmt, err.Statement)
	require.Equal(t, expr, err.Expression)
	require.ErrorIs(t, err, errBoom)
	require.Contains(t, err.Error(), "let-stmt")
	require.Contains(t, err.Error(), "42")
}

func TestReporterRestoresOnPop(t *testing.T) {
	r := diag.NewReporter()
	restore := r.EnterStatement(tree.NewLeaf(tree.KindVariable, "outer"))
	func() {
		inner := r.EnterStatement(tree.NewLeaf(tree.KindVariable, "inner"))
		defer inner()
		err := r.Wrap(diag.CategorySemantic, nil, "x")
		require.Equal(t, "inner", err.Statement.Value)
	}()
	err := r.Wrap(diag.CategorySemantic, nil, "x")
	require.Equal(t, "outer", err.Statement.Value)
	restore()
}

func TestIsCategory(t *testing.T) {
	err := diag.New(diag.CategoryShapeMismatch, errBoom, "mismatch")
	require.True(t, diag.Is(err, diag.CategoryShapeMismatch))
	require.False(t, diag.Is(err, diag.CategorySemantic))
	require.False(t, diag.Is(errBoom, diag.CategorySemantic))
}
