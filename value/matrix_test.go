package value_test

import (
	"testing"

	"github.com/katalvlaran/vecc/value"
	"github.com/stretchr/testify/require"
)

func mat(t *testing.T, rows [][]string) value.Matrix {
	t.Helper()
	vs := make([]value.Vector, len(rows))
	for i, r := range rows {
		vs[i] = vec(r...)
	}
	m, err := value.NewMatrix(vs)
	require.NoError(t, err)

	return m
}

func TestNewMatrixRagged(t *testing.T) {
	_, err := value.NewMatrix([]value.Vector{vec("a", "b"), vec("c")})
	require.ErrorIs(t, err, value.ErrRaggedMatrix)
}

func TestNewMatrixEmpty(t *testing.T) {
	_, err := value.NewMatrix(nil)
	require.ErrorIs(t, err, value.ErrEmptyMatrix)
}

func TestMatrixRowsCols(t *testing.T) {
	m := mat(t, [][]string{{"a", "b"}, {"c", "d"}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
}

func TestMatrixTranspose(t *testing.T) {
	m := mat(t, [][]string{{"a", "b"}, {"c", "d"}})
	tr := m.Transpose()
	e, err := tr.Elem(0, 1)
	require.NoError(t, err)
	require.Equal(t, "c", e.Evaluate().Value)
}

func TestMatrixMatmulDimensionMismatch(t *testing.T) {
	a := mat(t, [][]string{{"a", "b"}})
	b := mat(t, [][]string{{"c", "d"}})
	_, err := a.Matmul(b)
	require.ErrorIs(t, err, value.ErrDimensionMismatch)
}

func TestMatrixMatmulShape(t *testing.T) {
	a := mat(t, [][]string{{"a", "b"}, {"c", "d"}})
	b := mat(t, [][]string{{"e", "f"}, {"g", "h"}})
	prod, err := a.Matmul(b)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 2, prod.Cols())
	cell, err := prod.Elem(0, 0)
	require.NoError(t, err)
	got := cell.Evaluate()
	require.Equal(t, "add", string(got.Kind))
}

func TestMatrixElemOutOfRange(t *testing.T) {
	m := mat(t, [][]string{{"a"}})
	_, err := m.Elem(5, 0)
	require.ErrorIs(t, err, value.ErrIndexOutOfRange)
}

func TestMatrixAssignPerCellNames(t *testing.T) {
	m := mat(t, [][]string{{"a", "b"}})
	assignments, bound := m.Assign(2)
	require.Len(t, assignments, 2)
	require.Equal(t, "M2_r0_c0", assignments[0].Children[0].Value)
	require.Equal(t, "M2_r0_c1", assignments[1].Children[0].Value)
	e, _ := bound.Elem(0, 1)
	require.Equal(t, "M2_r0_c1", e.Evaluate().Value)
}
