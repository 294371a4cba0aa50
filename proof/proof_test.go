package proof_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthgeo/point"
	"github.com/katalvlaran/synthgeo/predicate"
	"github.com/katalvlaran/synthgeo/proof"
)

// S1: Parallel transitivity. AB || CD and CD || EF should yield AB || EF
// through the DD driver alone, with no need for SearchAR.
func TestParallelTransitivity(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 1)
	d := point.New("D", 1, 1)
	e := point.New("E", 0, 2)
	f := point.New("F", 1, 2)

	goal := predicate.Para(a, b, e, f)
	p, err := proof.New(
		[]point.Point{a, b, c, d, e, f},
		[]predicate.Predicate{predicate.Para(a, b, c, d), predicate.Para(c, d, e, f)},
		[]predicate.Predicate{goal},
	)
	require.NoError(t, err)

	p.Saturate(10)
	require.True(t, p.IsSolved())

	text, err := p.RenderProof(false)
	require.NoError(t, err)
	require.Contains(t, text, goal.String())
}

// S2: congruence-chain transitivity. |AB|=|CD| and |CD|=|EF| should yield
// |AB|=|EF|, reachable both through the DD driver's cong_transitivity rule
// and, independently, through AR's exact-rational row span (the two axiom
// rows sum exactly to the goal's row in the log-length-ratio system).
func TestCongChainingViaDDOrAR(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 2, 0)
	c := point.New("C", 10, 0)
	d := point.New("D", 12, 0)
	e := point.New("E", 20, 0)
	f := point.New("F", 22, 0)

	goal := predicate.Cong(a, b, e, f)
	p, err := proof.New(
		[]point.Point{a, b, c, d, e, f},
		[]predicate.Predicate{
			predicate.Cong(a, b, c, d),
			predicate.Cong(c, d, e, f),
		},
		[]predicate.Predicate{goal},
	)
	require.NoError(t, err)

	p.Saturate(10)
	require.True(t, p.IsSolved())
}

// S4: an angle-constant goal reached purely by algebraic combination of two
// Aconst axioms sharing a line, with no DD rule involved at all.
func TestAngleConstantCombinationViaAR(t *testing.T) {
	a := point.New("A", -1, 0)
	b := point.New("B", 0, 0)
	c := point.New("C", 0, 1)
	d := point.New("D", 0.70710678, -0.70710678)

	// ABC = pi/2, CBD = pi/4 (by construction) => ABD = 3pi/4 (mod pi).
	goal := predicate.Aconst(a, b, d, 3, 4)
	p, err := proof.New(
		[]point.Point{a, b, c, d},
		[]predicate.Predicate{
			predicate.Aconst(a, b, c, 1, 2),
			predicate.Aconst(c, b, d, 1, 4),
		},
		[]predicate.Predicate{goal},
	)
	require.NoError(t, err)

	p.Saturate(10)
	require.True(t, p.IsSolved())
}

// S3: AA similarity. Two Eqangle axioms giving two of a triangle
// correspondence's three vertex-angle equalities should solve a Simtri1
// goal through the DD driver's aa_similarity rule alone.
func TestAASimilarityViaDD(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 4, 0)
	c := point.New("C", 0, 3)
	d := point.New("D", 0, 0)
	e := point.New("E", 8, 0)
	f := point.New("F", 0, 6)

	goal := predicate.Simtri1(a, b, c, d, e, f)
	p, err := proof.New(
		[]point.Point{a, b, c, d, e, f},
		[]predicate.Predicate{
			predicate.Eqangle(a, b, c, d, e, f), // angle B = angle E
			predicate.Eqangle(c, a, b, f, d, e), // angle A = angle D
		},
		[]predicate.Predicate{goal},
	)
	require.NoError(t, err)

	p.Saturate(10)
	require.True(t, p.IsSolved())
}

// S5: Sameclock is never produced by AR (it emits no algebraic rows) and no
// DD rule in this module derives it, so a Sameclock goal with no matching
// axiom must remain unreachable even though it is numerically true.
func TestUnreachableGoalReportsMissingGoal(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 1)
	d := point.New("D", 2, 0)
	e := point.New("E", 0, 2)
	f := point.New("F", -4, 0)

	goal := predicate.Sameclock(a, b, c, d, e, f)
	p, err := proof.New(
		[]point.Point{a, b, c, d, e, f},
		nil,
		[]predicate.Predicate{goal},
	)
	require.NoError(t, err)

	p.Saturate(5)
	require.False(t, p.IsSolved())

	_, err = p.RenderProof(false)
	require.Error(t, err)
	require.True(t, errors.Is(err, proof.ErrUnreachableGoal))
}

// S6: an axiom that fails its own numeric oracle must be rejected at
// construction, and New must report every invalid axiom, not just the
// first one found.
func TestInvalidAxiomRejected(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 0)
	d := point.New("D", 0, 5)

	_, err := proof.New(
		[]point.Point{a, b, c, d},
		[]predicate.Predicate{
			predicate.Cong(a, b, c, d), // |AB|=1, |CD|=5: false
			predicate.Perp(a, b, a, b), // degenerate, also false
		},
		nil,
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, proof.ErrInvalidAxiom))
}

func TestCanDeduceReturnsCurrentMembershipNotSideEffect(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 1)
	d := point.New("D", 1, 1)
	e := point.New("E", 0, 2)
	f := point.New("F", 1, 2)

	p, err := proof.New(
		[]point.Point{a, b, c, d, e, f},
		[]predicate.Predicate{predicate.Para(a, b, c, d), predicate.Para(c, d, e, f)},
		nil,
	)
	require.NoError(t, err)

	target := predicate.Para(a, b, e, f)
	_, known := p.Known(target.Canonical())
	require.False(t, known)

	require.False(t, p.CanDeduce(target))

	p.FlushDeductions()
	_, known = p.Known(target.Canonical())
	require.True(t, known)
}

func TestSaturateOnAlreadySolvedProblemIsNoop(t *testing.T) {
	a := point.New("A", 0, 0)
	c := point.New("C", 2, 0)
	b := point.New("B", 1, 0) // midpoint of AC

	goal := predicate.Col(a, b, c)
	axiom := predicate.Midp(b, a, c)

	p, err := proof.New([]point.Point{a, b, c}, []predicate.Predicate{axiom}, []predicate.Predicate{goal})
	require.NoError(t, err)

	// Midp's sub_deduction rule already records Col(A,B,C) during New's
	// initial FlushDeductions, so the problem is solved before Saturate runs.
	require.True(t, p.IsSolved())
	before := len(p.Predicates())
	p.Saturate(10)
	require.True(t, p.IsSolved())
	require.Equal(t, before, len(p.Predicates()))
}
