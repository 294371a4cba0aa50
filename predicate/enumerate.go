package predicate

import "github.com/katalvlaran/synthgeo/point"

// This file generates bounded candidate sets for proof.SearchAR's sweep
// (§4.4, §9's Open Question on sweep scope). It never decides truth — every
// candidate is just a constructed Predicate, to be tested against AR's row
// span by the caller. Enumeration is over index combinations/permutations of
// the caller-supplied point set, so the caller (proof package) is the one
// responsible for capping the point count before calling in here; a blow-up
// from a large point set is a caller-side budget problem, not a correctness
// one.

// combinations returns every k-element index combination of [0,n), in
// lexicographic order.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	for {
		cp := append([]int(nil), idx...)
		out = append(out, cp)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// permutations returns every k-element index permutation of [0,n), in
// lexicographic order of the chosen-and-ordered index tuples.
func permutations(n, k int) [][]int {
	var out [][]int
	used := make([]bool, n)
	cur := make([]int, 0, k)
	var rec func()
	rec = func() {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, i)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}

func take(points []point.Point, idx []int) []point.Point {
	out := make([]point.Point, len(idx))
	for i, j := range idx {
		out[i] = points[j]
	}
	return out
}

// EnumerateCol returns a Col candidate for every 3-combination of points.
func EnumerateCol(points []point.Point) []Predicate {
	var out []Predicate
	for _, c := range combinations(len(points), 3) {
		p := take(points, c)
		out = append(out, Col(p[0], p[1], p[2]))
	}
	return out
}

// EnumerateCyclic returns a Cyclic candidate for every 4-combination of points.
func EnumerateCyclic(points []point.Point) []Predicate {
	var out []Predicate
	for _, c := range combinations(len(points), 4) {
		p := take(points, c)
		out = append(out, Cyclic(p[0], p[1], p[2], p[3]))
	}
	return out
}

type segment struct{ a, b point.Point }

func allSegments(points []point.Point) []segment {
	var segs []segment
	for _, c := range combinations(len(points), 2) {
		p := take(points, c)
		segs = append(segs, segment{p[0], p[1]})
	}
	return segs
}

func twoSegmentCandidates(points []point.Point, build func(a, b, c, d point.Point) Predicate) []Predicate {
	segs := allSegments(points)
	var out []Predicate
	for _, c := range combinations(len(segs), 2) {
		s1, s2 := segs[c[0]], segs[c[1]]
		out = append(out, build(s1.a, s1.b, s2.a, s2.b))
	}
	return out
}

// EnumeratePara returns a Para candidate for every pair of distinct segments.
func EnumeratePara(points []point.Point) []Predicate {
	return twoSegmentCandidates(points, Para)
}

// EnumeratePerp returns a Perp candidate for every pair of distinct segments.
func EnumeratePerp(points []point.Point) []Predicate {
	return twoSegmentCandidates(points, Perp)
}

// EnumerateCong returns a Cong candidate for every pair of distinct segments.
func EnumerateCong(points []point.Point) []Predicate {
	return twoSegmentCandidates(points, Cong)
}

// EnumerateEqangle returns an Eqangle candidate for every pair of distinct
// ordered 3-permutations (the middle element is the angle's vertex).
func EnumerateEqangle(points []point.Point) []Predicate {
	perms := permutations(len(points), 3)
	var out []Predicate
	for _, c := range combinations(len(perms), 2) {
		t1, t2 := take(points, perms[c[0]]), take(points, perms[c[1]])
		out = append(out, Eqangle(t1[0], t1[1], t1[2], t2[0], t2[1], t2[2]))
	}
	return out
}

// EnumerateEqratio returns an Eqratio candidate for every pair of distinct
// ordered segment-ratios (numerator segment, denominator segment).
func EnumerateEqratio(points []point.Point) []Predicate {
	segs := allSegments(points)
	ratioPerms := permutations(len(segs), 2)
	var out []Predicate
	for _, c := range combinations(len(ratioPerms), 2) {
		r1, r2 := ratioPerms[c[0]], ratioPerms[c[1]]
		s1a, s1b := segs[r1[0]], segs[r1[1]]
		s2a, s2b := segs[r2[0]], segs[r2[1]]
		out = append(out, Eqratio(s1a.a, s1a.b, s1b.a, s1b.b, s2a.a, s2a.b, s2b.a, s2b.b))
	}
	return out
}

// AngleConstant is one entry of the fixed angle-constant table (m*pi/n).
type AngleConstant struct{ M, N int }

// EnumerateAconst returns an Aconst candidate for every ordered 3-permutation
// of points crossed with every entry of constants.
func EnumerateAconst(points []point.Point, constants []AngleConstant) []Predicate {
	var out []Predicate
	for _, perm := range permutations(len(points), 3) {
		t := take(points, perm)
		for _, k := range constants {
			out = append(out, Aconst(t[0], t[1], t[2], k.M, k.N))
		}
	}
	return out
}
