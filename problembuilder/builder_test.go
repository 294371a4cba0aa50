package problembuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthgeo/point"
	"github.com/katalvlaran/synthgeo/predicate"
	"github.com/katalvlaran/synthgeo/problembuilder"
)

func TestBuildAndSolve(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 1)
	d := point.New("D", 1, 1)
	e := point.New("E", 0, 2)
	f := point.New("F", 1, 2)

	goal := predicate.Para(a, b, e, f)
	p, err := problembuilder.Build(
		[]point.Point{a, b, c, d, e, f},
		[]predicate.Predicate{predicate.Para(a, b, c, d), predicate.Para(c, d, e, f)},
		[]predicate.Predicate{goal},
		problembuilder.WithColor(false),
	)
	require.NoError(t, err)

	p.Saturate(10)
	require.True(t, p.IsSolved())

	text, err := p.Render()
	require.NoError(t, err)
	require.Contains(t, text, goal.String())
}

func TestSearchARCapDoesNotBlockDDDiscovery(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 1)
	d := point.New("D", 1, 1)
	e := point.New("E", 0, 2)
	f := point.New("F", 1, 2)

	goal := predicate.Para(a, b, e, f)
	p, err := problembuilder.Build(
		[]point.Point{a, b, c, d, e, f},
		[]predicate.Predicate{predicate.Para(a, b, c, d), predicate.Para(c, d, e, f)},
		[]predicate.Predicate{goal},
		problembuilder.WithColor(false),
		problembuilder.WithSearchARCap(2),
	)
	require.NoError(t, err)

	// DD's paraTransitivity rule doesn't care about the AR sweep cap at all,
	// so this scenario still solves — the cap only bounds what SearchAR
	// itself can discover, not the DD driver's own fact chaining.
	p.Saturate(10)
	require.True(t, p.IsSolved())
}

func TestBuildRejectsInvalidAxiom(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 0)
	d := point.New("D", 0, 5)

	_, err := problembuilder.Build(
		[]point.Point{a, b, c, d},
		[]predicate.Predicate{predicate.Cong(a, b, c, d)},
		nil,
	)
	require.Error(t, err)
}
