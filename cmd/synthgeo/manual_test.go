package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthgeo/predicate"
)

func TestParseManualBuildsPointsAxiomsAndGoals(t *testing.T) {
	src := `
# a trivial parallel-transitivity problem
point A 0 0
point B 1 0
point C 0 1
point D 1 1
point E 0 2
point F 1 2

axiom para A B C D
axiom para C D E F
goal para A B E F
`
	mp, err := parseManual(src)
	require.NoError(t, err)
	require.Len(t, mp.points, 6)
	require.Len(t, mp.axioms, 2)
	require.Len(t, mp.goals, 1)
	require.Equal(t, predicate.KindPara, mp.goals[0].Kind())
}

func TestParseManualAconstTrailingIntegers(t *testing.T) {
	src := `
point A -1 0
point B 0 0
point C 0 1
axiom aconst A B C 1 2
goal aconst A B C 1 2
`
	mp, err := parseManual(src)
	require.NoError(t, err)
	require.Len(t, mp.axioms, 1)
	require.Equal(t, predicate.KindAconst, mp.axioms[0].Kind())
}

func TestParseManualUnknownPointErrors(t *testing.T) {
	src := `
point A 0 0
axiom col A B A
`
	_, err := parseManual(src)
	require.Error(t, err)
}

func TestParseManualUnknownDirectiveErrors(t *testing.T) {
	_, err := parseManual("frobnicate A B C")
	require.Error(t, err)
}

func TestParseManualBadPointLineErrors(t *testing.T) {
	_, err := parseManual("point A 0")
	require.Error(t, err)
}
