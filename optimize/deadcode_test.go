package optimize_test

import (
	"testing"

	"github.com/katalvlaran/vecc/optimize"
	"github.com/katalvlaran/vecc/tree"
	"github.com/stretchr/testify/require"
)

func TestDeadCodeEliminateKeepsOnlyReachableAssignments(t *testing.T) {
	p := program(line(
		assign("N0", num("1")),
		assign("N1", num("2")),
		assign("N2", bin("add", ref("N0"), num("3"))),
	))
	roots := map[string]struct{}{"N2": {}}

	optimize.DeadCodeEliminate(p, roots)

	require.Len(t, p.Children, 1)
	require.Len(t, p.Children[0].Children, 2)
	names := []string{
		p.Children[0].Children[0].Children[0].Value,
		p.Children[0].Children[1].Children[0].Value,
	}
	require.ElementsMatch(t, []string{"N0", "N2"}, names)
}

func TestDeadCodeEliminateDropsEmptyLines(t *testing.T) {
	p := program(
		line(assign("N0", num("1"))),
		line(assign("N1", num("2"))),
	)
	roots := map[string]struct{}{"N1": {}}

	optimize.DeadCodeEliminate(p, roots)

	require.Len(t, p.Children, 1)
	require.Equal(t, "N1", p.Children[0].Children[0].Children[0].Value)
}

func TestDeadCodeEliminateToleratesExternalReferences(t *testing.T) {
	p := program(line(assign("N0", bin("add", ref("x"), num("1")))))
	roots := map[string]struct{}{"N0": {}}

	require.NotPanics(t, func() {
		optimize.DeadCodeEliminate(p, roots)
	})
	require.Len(t, p.Children[0].Children, 1)
}

func TestDeadCodeEliminateKeepsMultiHopChain(t *testing.T) {
	p := program(line(
		assign("N0", num("1")),
		assign("N1", ref("N0")),
		assign("N2", ref("N1")),
		assign("N3", num("99")),
	))
	roots := map[string]struct{}{"N2": {}}

	optimize.DeadCodeEliminate(p, roots)

	names := make([]string, 0, len(p.Children[0].Children))
	for _, a := range p.Children[0].Children {
		names = append(names, a.Children[0].Value)
	}
	require.ElementsMatch(t, []string{"N0", "N1", "N2"}, names)
}
