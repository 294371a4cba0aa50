package predicate

import (
	"math"

	"github.com/katalvlaran/synthgeo/point"
)

// IsValid evaluates the predicate against the numeric coordinates carried by
// its own points, within point.AngleTolerance / point.DistanceRelTolerance.
// This is the oracle §4.1 calls "ground truth": it never consults the
// deductive database or the algebraic reasoner, only coordinates.
//
// Composite kinds (Col, Midp, Simtri1/2, Contri1/2, Cyclic) are valid iff
// every one of their SubPredicates is valid, matching relations.py's
// conjunctive is_valid for derived relations.
func (p Predicate) IsValid() bool {
	pts := p.points
	switch p.kind {
	case KindPara:
		a, b, c, d := pts[0], pts[1], pts[2], pts[3]
		a1 := point.AngleOfLine(a, b)
		a2 := point.AngleOfLine(c, d)
		return point.IsCloseTol(math.Mod(a1-a2+math.Pi, math.Pi), 0, 0, point.AngleTolerance) ||
			point.IsCloseTol(math.Mod(a1-a2+math.Pi, math.Pi), math.Pi, 0, point.AngleTolerance)
	case KindPerp:
		a, b, c, d := pts[0], pts[1], pts[2], pts[3]
		a1 := point.AngleOfLine(a, b)
		a2 := point.AngleOfLine(c, d)
		diff := math.Mod(math.Abs(a1-a2), math.Pi)
		return point.IsCloseTol(diff, math.Pi/2, 0, point.AngleTolerance)
	case KindCong:
		a, b, c, d := pts[0], pts[1], pts[2], pts[3]
		return point.IsClose(point.Distance(a, b), point.Distance(c, d))
	case KindEqangle:
		a, b, c, d, e, f := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]
		ang1 := point.AngleBetween(a, b, c)
		ang2 := point.AngleBetween(d, e, f)
		diff := math.Mod(math.Abs(ang1-ang2), math.Pi)
		return point.IsCloseTol(diff, 0, 0, point.AngleTolerance) ||
			point.IsCloseTol(diff, math.Pi, 0, point.AngleTolerance)
	case KindEqratio:
		a, b, c, d, e, f, g, h := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5], pts[6], pts[7]
		d1, d2 := point.Distance(a, b), point.Distance(c, d)
		d3, d4 := point.Distance(e, f), point.Distance(g, h)
		if d2 == 0 || d4 == 0 {
			return false
		}
		return point.IsClose(d1/d2, d3/d4)
	case KindSameclock:
		a, b, c, d, e, f := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]
		return point.SameOrientation([]point.Point{a, b, c}, []point.Point{d, e, f})
	case KindAconst:
		a, b, c := pts[0], pts[1], pts[2]
		want := math.Pi * float64(p.m) / float64(p.n)
		got := point.AngleBetween(a, b, c)
		diff := math.Mod(math.Abs(got-want), math.Pi)
		return point.IsCloseTol(diff, 0, 0, point.AngleTolerance) ||
			point.IsCloseTol(diff, math.Pi, 0, point.AngleTolerance)
	default:
		for _, sp := range p.SubPredicates() {
			if !sp.IsValid() {
				return false
			}
		}
		return true
	}
}
