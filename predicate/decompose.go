package predicate

// SubPredicates returns the immediate (one-level) atomic consequences of a
// composite predicate, per spec.md §3's decomposition table. Atomic kinds
// (Para, Perp, Cong, Eqangle, Eqratio, Aconst, Sameclock) return nil: the DAG
// bottoms out there by construction (§9's "Cyclic structural references").
//
// Callers needing the full transitive closure (as §4.4 step 6 requires for
// provenance) must recurse themselves: SubPredicates(SubPredicates(p)) is
// not automatically included here, so the composite-of-composite case
// (Midp -> Col -> Para) is visible to a caller that walks the tree.
func (p Predicate) SubPredicates() []Predicate {
	pts := p.points
	switch p.kind {
	case KindCol:
		a, b, c := pts[0], pts[1], pts[2]
		return []Predicate{Para(a, b, b, c), Para(a, b, a, c), Para(b, c, a, c)}
	case KindMidp:
		m, a, b := pts[0], pts[1], pts[2]
		return []Predicate{Col(m, a, b), Cong(a, m, m, b)}
	case KindSimtri1:
		a, b, c, d, e, f := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]
		return []Predicate{
			Eqangle(a, b, c, d, e, f),
			Eqangle(b, c, a, e, f, d),
			Eqangle(c, a, b, f, d, e),
			Eqratio(a, c, b, c, d, f, e, f),
			Eqratio(a, c, b, a, d, f, e, d),
			Eqratio(b, c, a, b, e, f, d, e),
			Eqratio(a, c, d, f, b, c, e, f),
			Eqratio(b, c, e, f, b, a, e, d),
			Eqratio(b, a, e, d, a, c, d, f),
		}
	case KindSimtri2:
		a, b, c, d, e, f := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]
		return []Predicate{
			Eqangle(a, b, c, f, e, d),
			Eqangle(b, c, a, d, f, e),
			Eqangle(c, a, b, e, d, f),
			Eqratio(a, c, a, b, d, f, d, e),
			Eqratio(a, b, b, c, d, e, e, f),
		}
	case KindContri1:
		a, b, c, d, e, f := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]
		return []Predicate{
			Eqangle(a, b, c, d, e, f),
			Eqangle(b, c, a, e, f, d),
			Eqangle(c, a, b, f, d, e),
			Cong(a, b, d, e),
			Cong(b, c, e, f),
			Cong(c, a, f, d),
		}
	case KindContri2:
		a, b, c, d, e, f := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]
		return []Predicate{
			Eqangle(c, a, b, e, d, f),
			Eqangle(b, c, a, d, f, e),
			Eqangle(a, b, c, f, e, d),
			Cong(a, b, d, e),
			Cong(b, c, e, f),
			Cong(a, c, d, f),
		}
	case KindCyclic:
		a, b, c, d := pts[0], pts[1], pts[2], pts[3]
		return []Predicate{
			Eqangle(b, a, c, b, d, c),
			Eqangle(d, a, c, d, b, c),
			Eqangle(b, d, a, b, c, a),
			Eqangle(d, b, a, d, c, a),
		}
	default:
		return nil
	}
}

// AllSubPredicates returns the full transitive closure of SubPredicates,
// deduplicated by Canonical(), for callers that want the whole DAG in one
// call rather than recursing through proof's own bookkeeping.
func AllSubPredicates(p Predicate) []Predicate {
	seen := map[string]bool{}
	var out []Predicate
	var walk func(Predicate)
	walk = func(cur Predicate) {
		for _, sp := range cur.SubPredicates() {
			if seen[sp.Canonical()] {
				continue
			}
			seen[sp.Canonical()] = true
			out = append(out, sp)
			walk(sp)
		}
	}
	walk(p)
	return out
}
