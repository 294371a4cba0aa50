package dd

import (
	"sort"

	"github.com/katalvlaran/synthgeo/point"
	"github.com/katalvlaran/synthgeo/predicate"
)

// sortedFacts returns m's values ordered by canonical string, so rule
// application order — and therefore which pairing wins when several could
// derive the same fact — does not depend on Go's unordered map iteration
// (spec.md §5's determinism requirement).
func sortedFacts(m map[string]predicate.Predicate) []facePair {
	out := make([]facePair, 0, len(m))
	for canon, pr := range m {
		out = append(out, facePair{canon, pr})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].canon < out[j].canon })
	return out
}

type facePair struct {
	canon string
	pred  predicate.Predicate
}

// applyRules is the fixed geometry rule set: every way a newly-queued fact p
// can combine with the existing fact base to justify a new fact. It is not
// exhaustive over every relation in spec.md §3 (a complete synthetic-
// geometry rule catalogue is an open-ended research artifact — see
// DESIGN.md), but covers the structural decomposition every predicate
// shares plus the transitive closure of the line relations (Para, Perp,
// Cong, Col), which is what original_source/dd.py spends most of its rule
// count on.
func (e *Engine) applyRules(p predicate.Predicate) []derivation {
	var out []derivation
	out = append(out, e.subDeductionRule(p)...)
	switch p.Kind() {
	case predicate.KindPara:
		out = append(out, e.paraTransitivity(p)...)
		out = append(out, e.paraPerpInteraction(p)...)
	case predicate.KindPerp:
		out = append(out, e.perpPerpToPara(p)...)
		out = append(out, e.paraPerpInteraction(p)...)
	case predicate.KindCong:
		out = append(out, e.congTransitivity(p)...)
	case predicate.KindCol:
		out = append(out, e.colChaining(p)...)
	case predicate.KindEqangle:
		out = append(out, e.aaSimilarity(p)...)
	}
	return out
}

// subDeductionRule records every immediate sub-predicate of a composite fact
// as its own fact, justified by the composite (spec.md §4.4's "sub_deduction"
// provenance rule).
func (e *Engine) subDeductionRule(p predicate.Predicate) []derivation {
	subs := p.SubPredicates()
	out := make([]derivation, 0, len(subs))
	for _, s := range subs {
		out = append(out, derivation{pred: s, rule: "sub_deduction", parents: []string{p.Canonical()}})
	}
	return out
}

type linePair struct {
	k1, k2     predicate.LineKey
	pts1, pts2 [2]point.Point
}

func linePairOf(p predicate.Predicate) linePair {
	pts := p.Points()
	return linePair{
		k1:   predicate.NewLineKey(pts[0], pts[1]),
		k2:   predicate.NewLineKey(pts[2], pts[3]),
		pts1: [2]point.Point{pts[0], pts[1]},
		pts2: [2]point.Point{pts[2], pts[3]},
	}
}

// matchShared checks every way two line-pairs (from independent two-line
// predicates, e.g. two Para facts) can share exactly one line, returning the
// two unmatched (other) line endpoints when they do and genuinely differ.
func matchShared(a, b linePair) (otherA, otherB [2]point.Point, found bool) {
	switch {
	case a.k2 == b.k1 && a.k1 != b.k2:
		return a.pts1, b.pts2, true
	case a.k2 == b.k2 && a.k1 != b.k1:
		return a.pts1, b.pts1, true
	case a.k1 == b.k1 && a.k2 != b.k2:
		return a.pts2, b.pts2, true
	case a.k1 == b.k2 && a.k2 != b.k1:
		return a.pts2, b.pts1, true
	default:
		return [2]point.Point{}, [2]point.Point{}, false
	}
}

// paraTransitivity: Para(L1,L2) & Para(L2,L3) => Para(L1,L3).
func (e *Engine) paraTransitivity(p predicate.Predicate) []derivation {
	lp := linePairOf(p)
	var out []derivation
	for _, fp := range sortedFacts(e.byKind[predicate.KindPara]) {
		if fp.canon == p.Canonical() {
			continue
		}
		lq := linePairOf(fp.pred)
		if otherA, otherB, ok := matchShared(lp, lq); ok {
			derived := predicate.Para(otherA[0], otherA[1], otherB[0], otherB[1])
			out = append(out, derivation{pred: derived, rule: "para_transitivity", parents: []string{p.Canonical(), fp.canon}})
		}
	}
	return out
}

// congTransitivity: Cong(L1,L2) & Cong(L2,L3) => Cong(L1,L3).
func (e *Engine) congTransitivity(p predicate.Predicate) []derivation {
	lp := linePairOf(p)
	var out []derivation
	for _, fp := range sortedFacts(e.byKind[predicate.KindCong]) {
		if fp.canon == p.Canonical() {
			continue
		}
		lq := linePairOf(fp.pred)
		if otherA, otherB, ok := matchShared(lp, lq); ok {
			derived := predicate.Cong(otherA[0], otherA[1], otherB[0], otherB[1])
			out = append(out, derivation{pred: derived, rule: "cong_transitivity", parents: []string{p.Canonical(), fp.canon}})
		}
	}
	return out
}

// perpPerpToPara: Perp(L1,L2) & Perp(L2,L3) => Para(L1,L3): two lines
// perpendicular to a common third line are parallel to each other.
func (e *Engine) perpPerpToPara(p predicate.Predicate) []derivation {
	lp := linePairOf(p)
	var out []derivation
	for _, fp := range sortedFacts(e.byKind[predicate.KindPerp]) {
		if fp.canon == p.Canonical() {
			continue
		}
		lq := linePairOf(fp.pred)
		if otherA, otherB, ok := matchShared(lp, lq); ok {
			derived := predicate.Para(otherA[0], otherA[1], otherB[0], otherB[1])
			out = append(out, derivation{pred: derived, rule: "perp_perp_to_para", parents: []string{p.Canonical(), fp.canon}})
		}
	}
	return out
}

// paraPerpInteraction: Perp(L1,L2) & Para(L2,L3) => Perp(L1,L3) (checked from
// either side, since the rule set dispatches it on both Para and Perp facts).
func (e *Engine) paraPerpInteraction(p predicate.Predicate) []derivation {
	lp := linePairOf(p)
	var otherKind predicate.Kind
	if p.Kind() == predicate.KindPerp {
		otherKind = predicate.KindPara
	} else {
		otherKind = predicate.KindPerp
	}
	var out []derivation
	for _, fp := range sortedFacts(e.byKind[otherKind]) {
		lq := linePairOf(fp.pred)
		if otherA, otherB, ok := matchShared(lp, lq); ok {
			derived := predicate.Perp(otherA[0], otherA[1], otherB[0], otherB[1])
			out = append(out, derivation{pred: derived, rule: "para_perp_interaction", parents: []string{p.Canonical(), fp.canon}})
		}
	}
	return out
}

// colChaining: two Col facts sharing two of their three points put all four
// points on a common line, so every 3-combination of the union is collinear
// too. Handles the common 4-point chaining case; closure over five or more
// points sharing a line is left to repeated application (each new pair of
// Col facts chains again), not computed in one step.
func (e *Engine) colChaining(p predicate.Predicate) []derivation {
	var out []derivation
	pPts := p.Points()
	for _, fp := range sortedFacts(e.byKind[predicate.KindCol]) {
		if fp.canon == p.Canonical() {
			continue
		}
		qPts := fp.pred.Points()
		union := unionByName(pPts, qPts)
		if len(union) != 4 {
			continue
		}
		shared := len(pPts) + len(qPts) - len(union)
		if shared < 2 {
			continue
		}
		for _, triple := range threeCombos(union) {
			derived := predicate.Col(triple[0], triple[1], triple[2])
			out = append(out, derivation{pred: derived, rule: "col_chaining", parents: []string{p.Canonical(), fp.canon}})
		}
	}
	return out
}

// aaSimilarity: two of a triangle correspondence's three vertex-angle
// equalities already pin down the third (angles sum to pi), so AA gives
// Simtri1 outright. Simtri1(a,b,c,d,e,f).SubPredicates() names exactly
// three such equalities — Eqangle(a,b,c,d,e,f), Eqangle(b,c,a,e,f,d),
// Eqangle(c,a,b,f,d,e), one per lockstep rotation of the two triples — so a
// newly-known Eqangle fact p is always one of those three roles for its own
// point order, and its two siblings are p's own triples rotated by one and
// by two. If either sibling is already known, the correspondence is AA-
// complete.
func (e *Engine) aaSimilarity(p predicate.Predicate) []derivation {
	pts := p.Points()
	a, b, c, d, f2, g := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]

	rot1 := predicate.Eqangle(b, c, a, f2, g, d)
	rot2 := predicate.Eqangle(c, a, b, g, d, f2)

	var out []derivation
	if rot1.Canonical() != p.Canonical() {
		if sib, ok := e.byKind[predicate.KindEqangle][rot1.Canonical()]; ok {
			out = append(out, derivation{
				pred:    predicate.Simtri1(a, b, c, d, f2, g),
				rule:    "aa_similarity",
				parents: []string{p.Canonical(), sib.Canonical()},
			})
		}
	}
	if rot2.Canonical() != p.Canonical() {
		if sib, ok := e.byKind[predicate.KindEqangle][rot2.Canonical()]; ok {
			out = append(out, derivation{
				pred:    predicate.Simtri1(a, b, c, d, f2, g),
				rule:    "aa_similarity",
				parents: []string{p.Canonical(), sib.Canonical()},
			})
		}
	}
	return out
}

func unionByName(a, b []point.Point) []point.Point {
	seen := map[string]bool{}
	var out []point.Point
	for _, pt := range a {
		if !seen[pt.Name] {
			seen[pt.Name] = true
			out = append(out, pt)
		}
	}
	for _, pt := range b {
		if !seen[pt.Name] {
			seen[pt.Name] = true
			out = append(out, pt)
		}
	}
	return out
}

func threeCombos(pts []point.Point) [][3]point.Point {
	var out [][3]point.Point
	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				out = append(out, [3]point.Point{pts[i], pts[j], pts[k]})
			}
		}
	}
	return out
}
