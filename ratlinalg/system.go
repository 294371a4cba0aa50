package ratlinalg

import (
	"math/big"
	"strconv"
)

// pivotRow is one row of the system's reduced row-echelon basis: vec is
// reduced against every other pivot (zero at every other pivot's column),
// origin expresses vec as a rational combination of the original rows added
// via AddRow, keyed by the row id System.AddRow returned for each.
type pivotRow struct {
	vec    Vector
	origin Vector
	pivot  string
}

// System is an incrementally-built exact-rational row space: the Go
// replacement for numpy's matrix_rank + pinv pairing in the original
// algebraic reasoner. Rows are added one at a time (mirroring AR.add_*'s
// incremental construction) and kept in reduced row-echelon form so that
// InSpan and AddRow are both single linear passes over the existing basis.
type System struct {
	pivots []pivotRow
	nextID int
}

// NewSystem returns an empty System.
func NewSystem() *System {
	return &System{}
}

func rowID(id int) string {
	return "r" + strconv.Itoa(id)
}

// reduce eliminates vec/origin against every existing pivot, in pivot-column
// lexicographic order (the pivots slice is maintained sorted that way), and
// reports the reduced pair.
func (s *System) reduce(vec, origin Vector) (Vector, Vector) {
	for _, p := range s.pivots {
		coeff, ok := vec[p.pivot]
		if !ok {
			continue
		}
		factor := new(big.Rat).Neg(coeff) // p.vec[p.pivot] == 1 by construction
		vec.axpy(factor, p.vec)
		origin.axpy(factor, p.origin)
	}
	return vec, origin
}

// insertPivot inserts a freshly normalized pivot row in pivot-column sorted
// order and back-substitutes it into every existing pivot, restoring the
// reduced-row-echelon invariant (no pivot row has a nonzero entry at any
// other pivot's column).
func (s *System) insertPivot(np pivotRow) {
	for i := range s.pivots {
		coeff, ok := s.pivots[i].vec[np.pivot]
		if !ok {
			continue
		}
		factor := new(big.Rat).Neg(coeff)
		s.pivots[i].vec.axpy(factor, np.vec)
		s.pivots[i].origin.axpy(factor, np.origin)
	}
	pos := len(s.pivots)
	for i, p := range s.pivots {
		if p.pivot > np.pivot {
			pos = i
			break
		}
	}
	s.pivots = append(s.pivots, pivotRow{})
	copy(s.pivots[pos+1:], s.pivots[pos:])
	s.pivots[pos] = np
}

// AddRow inserts row into the system, returning the row id future InSpan
// witnesses will reference. Adding a row already in the current span is
// legal (and common: predicates are re-derived from multiple rule firings)
// and simply contributes a zero-weight basis change.
func (s *System) AddRow(row Vector) int {
	id := s.nextID
	s.nextID++
	vec, origin := s.reduce(row.clone(), originUnit(id))
	if vec.isZero() {
		return id
	}
	pivotCol := vec.sortedColumns()[0]
	pivotVal := vec[pivotCol]
	inv := new(big.Rat).Inv(pivotVal)
	s.insertPivot(pivotRow{
		vec:    vec.scale(inv),
		origin: origin.scale(inv),
		pivot:  pivotCol,
	})
	return id
}

func originUnit(id int) Vector {
	v := NewVector()
	v.Add(rowID(id), big.NewRat(1, 1))
	return v
}

// InSpan reports whether target lies in the rational span of the rows added
// so far. When it does, witness maps each contributing row id (as returned
// by AddRow) to its rational coefficient in the combination that produces
// target; callers needing just the support set use the witness's keys.
func (s *System) InSpan(target Vector) (inSpan bool, witness map[int]*big.Rat) {
	vec, origin := s.reduce(target.clone(), NewVector())
	if !vec.isZero() {
		return false, nil
	}
	witness = make(map[int]*big.Rat, len(origin))
	for col, coeff := range origin {
		witness[parseRowID(col)] = new(big.Rat).Neg(coeff) // reduce accumulated target minus the combination
	}
	return true, witness
}

func parseRowID(col string) int {
	n := 0
	for i := 1; i < len(col); i++ { // skip leading 'r'
		n = n*10 + int(col[i]-'0')
	}
	return n
}
