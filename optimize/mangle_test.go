package optimize_test

import (
	"testing"

	"github.com/katalvlaran/vecc/optimize"
	"github.com/stretchr/testify/require"
)

func TestMangleRenamesConsistentlyAndSkipsReserved(t *testing.T) {
	p := program(line(
		assign("N0", num("1")),
		assign("result", bin("add", ref("N0"), ref("N0"))),
	))
	reserved := map[string]struct{}{"result": {}}

	memo := optimize.Mangle(p, reserved)

	require.Equal(t, "a", memo["N0"])
	require.Equal(t, "a", p.Children[0].Children[0].Children[0].Value)
	require.Equal(t, "result", p.Children[0].Children[1].Children[0].Value)
	rhs := rhsOf(p, 0, 1)
	require.Equal(t, "a", rhs.Children[0].Value)
	require.Equal(t, "a", rhs.Children[1].Value)
}

func TestMangleSkipsCandidatesCollidingWithReservedNames(t *testing.T) {
	p := program(line(
		assign("a", num("1")),
		assign("N1", ref("a")),
		assign("out", ref("N1")),
	))
	reserved := map[string]struct{}{"out": {}, "b": {}}

	memo := optimize.Mangle(p, reserved)

	// "a" is the first stream candidate and is free, so it is reused as
	// the fresh name for original "a"; "b" is reserved and must be skipped,
	// so the next identifier, "N1", receives "c".
	require.Equal(t, "a", memo["a"])
	require.Equal(t, "c", memo["N1"])
}

func TestMangleAssignsDistinctNamesToDistinctIdentifiers(t *testing.T) {
	p := program(line(
		assign("N0", num("1")),
		assign("N1", num("2")),
		assign("out", bin("add", ref("N0"), ref("N1"))),
	))
	reserved := map[string]struct{}{"out": {}}

	memo := optimize.Mangle(p, reserved)

	require.NotEqual(t, memo["N0"], memo["N1"])
	require.ElementsMatch(t, []string{"a", "b"}, []string{memo["N0"], memo["N1"]})
}
