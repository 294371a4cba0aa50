package factgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthgeo/factgraph"
)

func TestTopoOrderRespectsParents(t *testing.T) {
	g := factgraph.New()
	g.AddNode("col(A,B,C)", "axiom", nil)
	g.AddNode("para(AB,BC)", "sym", []string{"col(A,B,C)"})
	g.AddNode("perp(AB,CD)", "AR", []string{"para(AB,BC)", "col(A,B,C)"})

	order, err := g.TopoOrder()
	require.NoError(t, err)
	pos := map[string]int{}
	for i, id := range order {
		pos[id] = i
	}
	require.Less(t, pos["col(A,B,C)"], pos["para(AB,BC)"])
	require.Less(t, pos["para(AB,BC)"], pos["perp(AB,CD)"])
}

func TestAncestors(t *testing.T) {
	g := factgraph.New()
	g.AddNode("a", "axiom", nil)
	g.AddNode("b", "axiom", nil)
	g.AddNode("c", "rule", []string{"a", "b"})
	g.AddNode("d", "rule", []string{"c"})

	anc, err := g.Ancestors("d")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b", "c"}, anc)
}

func TestAncestorsUnknownNode(t *testing.T) {
	g := factgraph.New()
	_, err := g.Ancestors("missing")
	require.ErrorIs(t, err, factgraph.ErrUnknownNode)
}

func TestAddNodeIdempotent(t *testing.T) {
	g := factgraph.New()
	g.AddNode("a", "axiom", nil)
	g.AddNode("a", "different_rule", []string{"b"})
	rule, parents, ok := g.Rule("a")
	require.True(t, ok)
	require.Equal(t, "axiom", rule)
	require.Empty(t, parents)
}

func TestTopoOrderDetectsCycle(t *testing.T) {
	g := factgraph.New()
	g.AddNode("a", "rule", []string{"b"})
	g.AddNode("b", "rule", []string{"a"})

	_, err := g.TopoOrder()
	require.ErrorIs(t, err, factgraph.ErrCycle)
}
