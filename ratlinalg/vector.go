package ratlinalg

import (
	"math/big"
	"sort"
)

// constColumn is the reserved column holding a row's constant term. It is a
// control character so it can never collide with a caller-supplied column
// name (predicate.LineKey.String() and "r<n>" origin ids are both printable).
const constColumn = "\x00const"

// Vector is a sparse linear combination of named columns, stored as nonzero
// coefficients only. Reading a missing column is implicitly zero.
type Vector map[string]*big.Rat

// NewVector returns an empty (all-zero) Vector.
func NewVector() Vector { return Vector{} }

// Add accumulates delta into column col, removing the entry if the result is
// exactly zero so len(v) == 0 is a reliable zero-vector test.
func (v Vector) Add(col string, delta *big.Rat) {
	if delta.Sign() == 0 {
		return
	}
	cur, ok := v[col]
	if !ok {
		cur = new(big.Rat)
		v[col] = cur
	}
	cur.Add(cur, delta)
	if cur.Sign() == 0 {
		delete(v, col)
	}
}

// SetConst sets the vector's constant term.
func (v Vector) SetConst(c *big.Rat) {
	if c == nil || c.Sign() == 0 {
		delete(v, constColumn)
		return
	}
	v[constColumn] = new(big.Rat).Set(c)
}

// Const returns the vector's constant term (zero if unset).
func (v Vector) Const() *big.Rat {
	if c, ok := v[constColumn]; ok {
		return new(big.Rat).Set(c)
	}
	return new(big.Rat)
}

func (v Vector) clone() Vector {
	out := make(Vector, len(v))
	for k, val := range v {
		out[k] = new(big.Rat).Set(val)
	}
	return out
}

// isZero reports whether every coefficient (including the constant) is zero.
func (v Vector) isZero() bool { return len(v) == 0 }

// sortedColumns returns v's nonzero columns in deterministic (lexicographic)
// order. The AR engine's determinism property (spec.md §8) depends on every
// pivot-selection and elimination step breaking ties this way rather than by
// Go's unspecified map iteration order.
func (v Vector) sortedColumns() []string {
	cols := make([]string, 0, len(v))
	for k := range v {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// axpy computes v += factor*other in place.
func (v Vector) axpy(factor *big.Rat, other Vector) {
	if factor.Sign() == 0 {
		return
	}
	for col, coeff := range other {
		delta := new(big.Rat).Mul(factor, coeff)
		v.Add(col, delta)
	}
}

// scale multiplies every coefficient of v by factor.
func (v Vector) scale(factor *big.Rat) Vector {
	out := make(Vector, len(v))
	for col, coeff := range v {
		scaled := new(big.Rat).Mul(coeff, factor)
		if scaled.Sign() != 0 {
			out[col] = scaled
		}
	}
	return out
}
