package ratlinalg_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthgeo/ratlinalg"
)

func vec(pairs map[string]int64, constNum, constDen int64) ratlinalg.Vector {
	v := ratlinalg.NewVector()
	for col, n := range pairs {
		v.Add(col, big.NewRat(n, 1))
	}
	if constNum != 0 {
		v.SetConst(big.NewRat(constNum, constDen))
	}
	return v
}

func TestInSpanDirectMembership(t *testing.T) {
	sys := ratlinalg.NewSystem()
	id := sys.AddRow(vec(map[string]int64{"AB": 1, "CD": -1}, 0, 1))

	ok, witness := sys.InSpan(vec(map[string]int64{"AB": 1, "CD": -1}, 0, 1))
	require.True(t, ok)
	require.Contains(t, witness, id)
}

func TestInSpanTransitiveCombination(t *testing.T) {
	sys := ratlinalg.NewSystem()
	sys.AddRow(vec(map[string]int64{"AB": 1, "CD": -1}, 0, 1)) // AB == CD
	sys.AddRow(vec(map[string]int64{"CD": 1, "EF": -1}, 0, 1)) // CD == EF

	ok, witness := sys.InSpan(vec(map[string]int64{"AB": 1, "EF": -1}, 0, 1))
	require.True(t, ok)
	require.Len(t, witness, 2)
}

func TestInSpanRejectsUnrelated(t *testing.T) {
	sys := ratlinalg.NewSystem()
	sys.AddRow(vec(map[string]int64{"AB": 1, "CD": -1}, 0, 1))

	ok, _ := sys.InSpan(vec(map[string]int64{"GH": 1, "IJ": -1}, 0, 1))
	require.False(t, ok)
}

func TestInSpanRespectsConstant(t *testing.T) {
	sys := ratlinalg.NewSystem()
	sys.AddRow(vec(map[string]int64{"AB": 1, "CD": -1}, 1, 2)) // AB - CD = 1/2 (perp-style)

	ok, _ := sys.InSpan(vec(map[string]int64{"AB": 1, "CD": -1}, 0, 1))
	require.False(t, ok, "same coefficients but different constant must not be in span")
}

func TestMinimizeWitnessDropsRedundantRow(t *testing.T) {
	// Two candidate parents carry the exact same fact; either alone already
	// spans the target, so the later one (by insertion order) is dropped.
	rows := map[int]ratlinalg.Vector{
		0: vec(map[string]int64{"AB": 1, "CD": -1}, 0, 1),
		1: vec(map[string]int64{"AB": 1, "CD": -1}, 0, 1),
	}
	target := vec(map[string]int64{"AB": 1, "CD": -1}, 0, 1)
	minimal := ratlinalg.MinimizeWitness(rows, []int{0, 1}, target)
	require.Equal(t, []int{0}, minimal)
}

func TestMinimizeWitnessKeepsNecessaryRows(t *testing.T) {
	rows := map[int]ratlinalg.Vector{
		0: vec(map[string]int64{"AB": 1, "CD": -1}, 0, 1),
		1: vec(map[string]int64{"CD": 1, "EF": -1}, 0, 1),
	}
	target := vec(map[string]int64{"AB": 1, "EF": -1}, 0, 1)
	minimal := ratlinalg.MinimizeWitness(rows, []int{0, 1}, target)
	require.Equal(t, []int{0, 1}, minimal)
}
