package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthgeo/point"
	"github.com/katalvlaran/synthgeo/predicate"
)

func square() (a, b, c, d point.Point) {
	return point.New("A", 0, 0), point.New("B", 1, 0), point.New("C", 1, 1), point.New("D", 0, 1)
}

func TestParaCanonicalSymmetric(t *testing.T) {
	a, b, c, d := square()
	p1 := predicate.Para(a, b, c, d)
	p2 := predicate.Para(c, d, a, b)
	p3 := predicate.Para(b, a, d, c)
	require.Equal(t, p1.Canonical(), p2.Canonical())
	require.Equal(t, p1.Canonical(), p3.Canonical())
}

func TestColCanonicalPermutationInvariant(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 2, 0)
	require.Equal(t, predicate.Col(a, b, c).Canonical(), predicate.Col(c, b, a).Canonical())
	require.Equal(t, predicate.Col(a, b, c).Canonical(), predicate.Col(b, c, a).Canonical())
}

func TestEqangleCanonicalTripleSwapNotReversal(t *testing.T) {
	a, b, c, d := square()
	e := point.New("E", 2, 2)
	f := point.New("F", 3, 2)
	p1 := predicate.Eqangle(a, b, c, d, e, f)
	p2 := predicate.Eqangle(d, e, f, a, b, c)
	require.Equal(t, p1.Canonical(), p2.Canonical(), "swapping the two triples is a symmetry")

	p3 := predicate.Eqangle(c, b, a, d, e, f)
	require.NotEqual(t, p1.Canonical(), p3.Canonical(), "reversing one triple is not a symmetry")
}

func TestAconstReducesFraction(t *testing.T) {
	a, b, c := square_ABC()
	p1 := predicate.Aconst(a, b, c, 2, 4)
	p2 := predicate.Aconst(a, b, c, 1, 2)
	require.Equal(t, p1.Canonical(), p2.Canonical())
	require.Equal(t, 1, p1.M())
	require.Equal(t, 2, p1.N())
}

func square_ABC() (point.Point, point.Point, point.Point) {
	a, b, c, _ := square()
	return a, b, c
}

func TestColSubPredicatesAreParas(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 2, 0)
	subs := predicate.Col(a, b, c).SubPredicates()
	require.Len(t, subs, 3)
	for _, s := range subs {
		require.Equal(t, predicate.KindPara, s.Kind())
	}
}

func TestMidpIsValidAndDecomposes(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 2, 0)
	m := point.New("M", 1, 0)
	midp := predicate.Midp(m, a, b)
	require.True(t, midp.IsValid())

	subs := midp.SubPredicates()
	require.Len(t, subs, 2)
	require.Equal(t, predicate.KindCol, subs[0].Kind())
	require.Equal(t, predicate.KindCong, subs[1].Kind())

	off := point.New("M2", 1, 1)
	require.False(t, predicate.Midp(off, a, b).IsValid())
}

func TestPerpIsValid(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 0)
	d := point.New("D", 0, 1)
	require.True(t, predicate.Perp(a, b, c, d).IsValid())
	require.False(t, predicate.Perp(a, b, a, b).IsValid())
}

func TestCongAngleRowsEmptyRatioRowsPresent(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 0)
	d := point.New("D", 0, 2)
	p := predicate.Cong(a, b, c, d)
	require.Empty(t, p.AngleRows())
	require.Len(t, p.RatioRows(), 1)
}

func TestSimtri1RowsCombineEqangleAndEqratio(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 1, 0)
	c := point.New("C", 0, 1)
	d := point.New("D", 0, 0)
	e := point.New("E", 2, 0)
	f := point.New("F", 0, 2)
	p := predicate.Simtri1(a, b, c, d, e, f)
	require.Len(t, p.AngleRows(), 3)
	require.Len(t, p.RatioRows(), 6)
}

func TestEnumerateColCount(t *testing.T) {
	pts := []point.Point{
		point.New("A", 0, 0),
		point.New("B", 1, 0),
		point.New("C", 2, 0),
		point.New("D", 3, 1),
	}
	cands := predicate.EnumerateCol(pts)
	require.Len(t, cands, 4) // C(4,3)
}

func TestEnumerateParaCount(t *testing.T) {
	pts := []point.Point{
		point.New("A", 0, 0),
		point.New("B", 1, 0),
		point.New("C", 2, 0),
		point.New("D", 3, 1),
	}
	cands := predicate.EnumeratePara(pts)
	segCount := 6 // C(4,2)
	require.Len(t, cands, segCount*(segCount-1)/2)
}
