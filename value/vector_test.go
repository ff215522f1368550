package value_test

import (
	"testing"

	"github.com/katalvlaran/vecc/value"
	"github.com/stretchr/testify/require"
)

func vec(names ...string) value.Vector {
	elems := make([]value.Num, len(names))
	for i, n := range names {
		elems[i] = value.FromVariable(n)
	}

	return value.NewVector(elems)
}

func TestVectorMap(t *testing.T) {
	v := vec("x", "y").Map(value.OpNeg)
	require.Equal(t, 2, v.Length())
	e0, err := v.Elem(0)
	require.NoError(t, err)
	require.Equal(t, "neg", string(e0.Evaluate().Kind))
}

func TestVectorApplyLengthMismatch(t *testing.T) {
	_, err := vec("x").Apply(value.OpAdd, vec("y", "z"))
	require.ErrorIs(t, err, value.ErrDimensionMismatch)
}

func TestVectorReduceEmpty(t *testing.T) {
	empty := value.NewVector(nil)
	_, err := empty.Reduce(value.OpAdd)
	require.ErrorIs(t, err, value.ErrEmptyVector)
}

func TestVectorReduceLeftFold(t *testing.T) {
	v := vec("a", "b", "c")
	result, err := v.Reduce(value.OpAdd)
	require.NoError(t, err)
	got := result.Evaluate()
	// ((a+b)+c)
	require.Equal(t, "add", string(got.Kind))
	require.Equal(t, "c", got.Children[1].Value)
	require.Equal(t, "add", string(got.Children[0].Kind))
	require.Equal(t, "a", got.Children[0].Children[0].Value)
}

func TestVectorElemOutOfRange(t *testing.T) {
	_, err := vec("a").Elem(5)
	require.ErrorIs(t, err, value.ErrIndexOutOfRange)
}

func TestVectorConcatAndReverse(t *testing.T) {
	c := vec("a", "b").Concat(vec("c"))
	require.Equal(t, 3, c.Length())
	r := c.Reverse()
	e0, _ := r.Elem(0)
	require.Equal(t, "c", e0.Evaluate().Value)
}

func TestVectorDotLengthMismatch(t *testing.T) {
	_, err := vec("a").Dot(vec("b", "c"))
	require.ErrorIs(t, err, value.ErrDimensionMismatch)
}

func TestVectorAssignPerElementNames(t *testing.T) {
	v := vec("a", "b")
	assignments, bound := v.Assign(3)
	require.Len(t, assignments, 2)
	require.Equal(t, "V3_e0", assignments[0].Children[0].Value)
	require.Equal(t, "V3_e1", assignments[1].Children[0].Value)
	e0, _ := bound.Elem(0)
	require.Equal(t, "V3_e0", e0.Evaluate().Value)
}
