package predicate

import "math/big"

// AngleRow is one linear equation over the angle-mod-pi matrix: for each
// LineKey present, the coefficient of that line's angle variable; Const is
// the row's rational right-hand side: 1/2 for Perp, m/(2n) for Aconst with
// angle m*pi/n, and zero for Para and Eqangle.
type AngleRow struct {
	Coeffs map[LineKey]*big.Rat
	Const  *big.Rat
}

// RatioRow is one linear equation over the log-length-ratio matrix: for each
// LineKey, the coefficient of that line's log-length variable. The row's
// implicit right-hand side is always zero (ratios carry no constant term).
type RatioRow struct {
	Coeffs map[LineKey]*big.Rat
}

func newAngleRow() AngleRow {
	return AngleRow{Coeffs: map[LineKey]*big.Rat{}, Const: new(big.Rat)}
}

func newRatioRow() RatioRow {
	return RatioRow{Coeffs: map[LineKey]*big.Rat{}}
}

func addCoeff(m map[LineKey]*big.Rat, k LineKey, delta int64) {
	cur, ok := m[k]
	if !ok {
		cur = new(big.Rat)
		m[k] = cur
	}
	cur.Add(cur, big.NewRat(delta, 1))
}

// AngleRows returns the linear equations this predicate contributes to the
// angle-mod-pi system. Atomic kinds with a direct formula (Para, Perp,
// Eqangle, Aconst) return exactly one row; every other kind recurses through
// SubPredicates and concatenates, so a composite's rows are the union of its
// sub-predicates' rows (matching relations.py's collect_rows helper) without
// this switch needing to know which composite feeds which atomic kind.
func (p Predicate) AngleRows() []AngleRow {
	pts := p.points
	switch p.kind {
	case KindPara:
		l1 := NewLineKey(pts[0], pts[1])
		l2 := NewLineKey(pts[2], pts[3])
		row := newAngleRow()
		addCoeff(row.Coeffs, l1, 1)
		addCoeff(row.Coeffs, l2, -1)
		return []AngleRow{row}
	case KindPerp:
		l1 := NewLineKey(pts[0], pts[1])
		l2 := NewLineKey(pts[2], pts[3])
		row := newAngleRow()
		addCoeff(row.Coeffs, l1, 1)
		addCoeff(row.Coeffs, l2, 1)
		row.Const = big.NewRat(1, 2)
		return []AngleRow{row}
	case KindEqangle:
		ab := NewLineKey(pts[0], pts[1])
		bc := NewLineKey(pts[1], pts[2])
		de := NewLineKey(pts[3], pts[4])
		ef := NewLineKey(pts[4], pts[5])
		row := newAngleRow()
		addCoeff(row.Coeffs, ab, 1)
		addCoeff(row.Coeffs, bc, -1)
		addCoeff(row.Coeffs, de, -1)
		addCoeff(row.Coeffs, ef, 1)
		return []AngleRow{row}
	case KindAconst:
		ab := NewLineKey(pts[0], pts[1])
		bc := NewLineKey(pts[1], pts[2])
		row := newAngleRow()
		addCoeff(row.Coeffs, ab, 1)
		addCoeff(row.Coeffs, bc, -1)
		row.Const = big.NewRat(int64(p.m), int64(2*p.n))
		return []AngleRow{row}
	default:
		var rows []AngleRow
		for _, sp := range p.SubPredicates() {
			rows = append(rows, sp.AngleRows()...)
		}
		return rows
	}
}

// RatioRows returns the linear equations this predicate contributes to the
// log-length-ratio system, with the same recursion discipline as AngleRows.
func (p Predicate) RatioRows() []RatioRow {
	pts := p.points
	switch p.kind {
	case KindCong:
		l1 := NewLineKey(pts[0], pts[1])
		l2 := NewLineKey(pts[2], pts[3])
		row := newRatioRow()
		addCoeff(row.Coeffs, l1, 1)
		addCoeff(row.Coeffs, l2, -1)
		return []RatioRow{row}
	case KindEqratio:
		l1 := NewLineKey(pts[0], pts[1])
		l2 := NewLineKey(pts[2], pts[3])
		l3 := NewLineKey(pts[4], pts[5])
		l4 := NewLineKey(pts[6], pts[7])
		row := newRatioRow()
		addCoeff(row.Coeffs, l1, 1)
		addCoeff(row.Coeffs, l2, -1)
		addCoeff(row.Coeffs, l3, -1)
		addCoeff(row.Coeffs, l4, 1)
		return []RatioRow{row}
	default:
		var rows []RatioRow
		for _, sp := range p.SubPredicates() {
			rows = append(rows, sp.RatioRows()...)
		}
		return rows
	}
}
