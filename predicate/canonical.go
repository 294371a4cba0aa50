package predicate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/synthgeo/point"
)

// This file holds both the constructors (Col, Para, Perp, ...) and the
// canonicalisation logic for each Kind, since the canonical string is
// computed once at construction time and never again: Predicate.canon is
// immutable, matching §3's "Predicates, once added, are never removed"
// lifecycle and the "Construction never fails" contract of §4.1.

func twoSegmentCanonical(tag string, a, b, c, d point.Point) string {
	l1 := NewLineKey(a, b)
	l2 := NewLineKey(c, d)
	l1, l2 = sortedLineKeyPair(l1, l2)
	return tag + ":" + l1.String() + "|" + l2.String()
}

// Para constructs AB || CD.
func Para(a, b, c, d point.Point) Predicate {
	return Predicate{kind: KindPara, points: []point.Point{a, b, c, d}, canon: twoSegmentCanonical("para", a, b, c, d)}
}

// Perp constructs AB ⊥ CD.
func Perp(a, b, c, d point.Point) Predicate {
	return Predicate{kind: KindPerp, points: []point.Point{a, b, c, d}, canon: twoSegmentCanonical("perp", a, b, c, d)}
}

// Cong constructs |AB| = |CD|.
func Cong(a, b, c, d point.Point) Predicate {
	return Predicate{kind: KindCong, points: []point.Point{a, b, c, d}, canon: twoSegmentCanonical("cong", a, b, c, d)}
}

// Col constructs "A, B, C collinear". Collinearity is symmetric in all
// three points (it decomposes into the three pairwise-parallel statements
// over AB/BC/AC, which as a set does not depend on naming order).
func Col(a, b, c point.Point) Predicate {
	names := sortedStrings([]string{a.Name, b.Name, c.Name})
	return Predicate{kind: KindCol, points: []point.Point{a, b, c}, canon: "col:" + strings.Join(names, ",")}
}

func tripleString(a, b, c point.Point) string {
	return a.Name + "," + b.Name + "," + c.Name
}

// Eqangle constructs ∠ABC = ∠DEF. The two angle triples are an unordered
// pair (swapping the whole triples is a symmetry); neither triple is
// reversible on its own, matching the data model in spec.md §3.
func Eqangle(a, b, c, d, e, f point.Point) Predicate {
	t1, t2 := tripleString(a, b, c), tripleString(d, e, f)
	pair := sort.StringSlice{t1, t2}
	pair.Sort()
	return Predicate{kind: KindEqangle, points: []point.Point{a, b, c, d, e, f}, canon: "eqangle:" + pair[0] + ";" + pair[1]}
}

// Sameclock constructs "ABC and DEF have the same orientation". Structurally
// identical to Eqangle: an unordered pair of ordered triples.
func Sameclock(a, b, c, d, e, f point.Point) Predicate {
	t1, t2 := tripleString(a, b, c), tripleString(d, e, f)
	pair := sort.StringSlice{t1, t2}
	pair.Sort()
	return Predicate{kind: KindSameclock, points: []point.Point{a, b, c, d, e, f}, canon: "sameclock:" + pair[0] + ";" + pair[1]}
}

// Eqratio constructs AB/CD = EF/GH: an unordered pair of ordered ratios,
// each ratio itself an ordered pair of (unordered) line keys.
func Eqratio(a, b, c, d, e, f, g, h point.Point) Predicate {
	ratio := func(p, q, r, s point.Point) string {
		return NewLineKey(p, q).String() + "/" + NewLineKey(r, s).String()
	}
	r1, r2 := ratio(a, b, c, d), ratio(e, f, g, h)
	pair := sort.StringSlice{r1, r2}
	pair.Sort()
	return Predicate{kind: KindEqratio, points: []point.Point{a, b, c, d, e, f, g, h}, canon: "eqratio:" + pair[0] + ";" + pair[1]}
}

// Cyclic constructs "A,B,C,D concyclic", symmetric under any permutation of
// the four points.
func Cyclic(a, b, c, d point.Point) Predicate {
	names := sortedStrings([]string{a.Name, b.Name, c.Name, d.Name})
	return Predicate{kind: KindCyclic, points: []point.Point{a, b, c, d}, canon: "cyclic:" + strings.Join(names, ",")}
}

// Midp constructs "M is the midpoint of AB". M is distinguished; A and B
// are interchangeable.
func Midp(m, a, b point.Point) Predicate {
	seg := NewLineKey(a, b)
	return Predicate{kind: KindMidp, points: []point.Point{m, a, b}, canon: "midp:" + m.Name + ":" + seg.String()}
}

// Aconst constructs ∠ABC = m*pi/n, reducing m/n to lowest terms (n stays
// positive). A, B, C order is significant (the angle has a vertex and a
// direction of sweep), matching the data model's bare tuple.
func Aconst(a, b, c point.Point, m, n int) Predicate {
	if n < 0 {
		m, n = -m, -n
	}
	g := gcd(m, n)
	if g != 0 {
		m, n = m/g, n/g
	}
	canon := "aconst:" + tripleString(a, b, c) + ":" + strconv.Itoa(m) + "/" + strconv.Itoa(n)
	return Predicate{kind: KindAconst, points: []point.Point{a, b, c}, m: m, n: n, canon: canon}
}

// trianglePairCanonical builds the canonical form shared by Simtri1/2 and
// Contri1/2: both are symmetric under swapping the two triangles, and under
// rotating both correspondences in lockstep (ABC,DEF)->(BCA,EFD)->(CAB,FDE),
// since the underlying vertex-to-vertex correspondence is unchanged by a
// simultaneous relabelling of "which vertex is first".
func trianglePairCanonical(tag string, a, b, c, d, e, f point.Point) string {
	rotate3 := func(p, q, r point.Point) [3]point.Point { return [3]point.Point{p, q, r} }
	left := [3][3]point.Point{
		rotate3(a, b, c),
		rotate3(b, c, a),
		rotate3(c, a, b),
	}
	right := [3][3]point.Point{
		rotate3(d, e, f),
		rotate3(e, f, d),
		rotate3(f, d, e),
	}
	var candidates []string
	render := func(t1, t2 [3]point.Point) string {
		return tripleString(t1[0], t1[1], t1[2]) + ";" + tripleString(t2[0], t2[1], t2[2])
	}
	for i := 0; i < 3; i++ {
		candidates = append(candidates, render(left[i], right[i]))
		candidates = append(candidates, render(right[i], left[i]))
	}
	sort.Strings(candidates)
	return tag + ":" + candidates[0]
}

// Simtri1 constructs "triangle ABC similar to triangle DEF" (direct
// orientation correspondence).
func Simtri1(a, b, c, d, e, f point.Point) Predicate {
	return Predicate{kind: KindSimtri1, points: []point.Point{a, b, c, d, e, f}, canon: trianglePairCanonical("simtri1", a, b, c, d, e, f)}
}

// Simtri2 constructs "triangle ABC similar to triangle DEF" (mirrored
// orientation correspondence).
func Simtri2(a, b, c, d, e, f point.Point) Predicate {
	return Predicate{kind: KindSimtri2, points: []point.Point{a, b, c, d, e, f}, canon: trianglePairCanonical("simtri2", a, b, c, d, e, f)}
}

// Contri1 constructs "triangle ABC congruent to triangle DEF" (direct).
func Contri1(a, b, c, d, e, f point.Point) Predicate {
	return Predicate{kind: KindContri1, points: []point.Point{a, b, c, d, e, f}, canon: trianglePairCanonical("contri1", a, b, c, d, e, f)}
}

// Contri2 constructs "triangle ABC congruent to triangle DEF" (mirrored).
func Contri2(a, b, c, d, e, f point.Point) Predicate {
	return Predicate{kind: KindContri2, points: []point.Point{a, b, c, d, e, f}, canon: trianglePairCanonical("contri2", a, b, c, d, e, f)}
}
