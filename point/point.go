package point

import "math"

// AngleTolerance is the absolute tolerance (in radians) used when comparing
// angles modulo pi. Deliberately permissive: problems are expected to carry
// small integer-ish coordinates, so angle noise from float64 trig is larger
// relative to the angle itself than it would be for distances.
//
// A package-level var rather than a const so config.Config.Apply can
// override it process-wide from a loaded TOML file; every caller that
// wants the default untouched should leave config's angle_tolerance unset
// rather than read this var directly before Apply runs.
var AngleTolerance = 1e-2

// DistanceRelTolerance mirrors Python's math.isclose default rel_tol and is
// used for every length/ratio comparison that is not an angle. Also
// overridable via config.Config.Apply; see AngleTolerance.
var DistanceRelTolerance = 1e-9

// Point is a named 2D point. Two Points are equal iff their name and both
// coordinates agree; Point is immutable after construction and safe to use
// as a map key.
type Point struct {
	Name string
	X, Y float64
}

// New constructs a Point. There is no fallible path: a Point with degenerate
// coordinates is represented faithfully and caught later by a predicate's
// IsValid, never rejected at construction (per predicate.Predicate's "never
// raises" construction contract).
func New(name string, x, y float64) Point {
	return Point{Name: name, X: x, Y: y}
}

func (p Point) String() string { return p.Name }

// IsClose reproduces Python's math.isclose(a, b) with its default
// rel_tol=1e-9, abs_tol=0.0: |a-b| <= rel_tol * max(|a|, |b|).
func IsClose(a, b float64) bool {
	return IsCloseTol(a, b, DistanceRelTolerance, 0)
}

// IsCloseTol is IsClose with an explicit relative and absolute tolerance.
func IsCloseTol(a, b, relTol, absTol float64) bool {
	diff := math.Abs(a - b)
	return diff <= math.Abs(relTol*math.Max(math.Abs(a), math.Abs(b))) || diff <= absTol
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleOfLine returns the angle of the directed line p->q, in (-pi, pi].
func AngleOfLine(p, q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// AngleBetween returns the directed angle p-q-r (the turn at q from
// q->p... rather from the incoming direction p->q to the outgoing q->r),
// normalized to [0, 2*pi).
func AngleBetween(p, q, r Point) float64 {
	angle := AngleOfLine(q, r) - AngleOfLine(p, q)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// SameOrientation reports whether two equal-length point sequences trace
// the same (clockwise/counter-clockwise) orientation, via the sign of their
// shoelace-style signed area. Used by predicate.Sameclock.
func SameOrientation(l1, l2 []Point) bool {
	if len(l1) != len(l2) {
		return false
	}
	edge := func(p, q Point) float64 {
		return (q.X - p.X) * (q.Y + p.Y)
	}
	var area1, area2 float64
	for i := range l1 {
		area1 += edge(l1[i], l1[(i+1)%len(l1)])
	}
	for i := range l2 {
		area2 += edge(l2[i], l2[(i+1)%len(l2)])
	}
	return (area1 * area2) > 0
}
