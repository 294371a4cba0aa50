// Package ar implements C4, the algebraic reasoner from spec.md §4.3: two
// exact-rational linear systems (an angle-mod-pi system and a log-length-
// ratio system, both backed by ratlinalg.System) that predicates contribute
// rows to, and that new predicates are tested against by row-span
// membership.
//
// Unlike the original Python implementation (original_source/ar.py), which
// used numpy's pseudo-inverse and matrix_rank over float64 and therefore
// needed an explicit near-zero coefficient threshold, this package's rows
// are math/big.Rat exact, so span membership is exact equality with no
// epsilon anywhere; a trivially-true predicate (AR_implicit: both its angle
// and ratio rows reduce to the exact zero vector, e.g. Eqangle(A,B,C,A,B,C))
// is recognized by ratlinalg.System.InSpan on an empty system without any
// special-cased short circuit.
package ar
