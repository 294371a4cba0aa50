// Package ratlinalg is the exact-rational replacement for the numpy
// pseudo-inverse / matrix_rank pairing the original Python algebraic reasoner
// used (see original_source/ar.py). Every coefficient is a math/big.Rat, so
// row-span membership and minimal-witness extraction are exact: there is no
// floating-point epsilon anywhere in this package, unlike point's tolerances.
//
// No example repo in the corpus ships an exact-rational linear-algebra
// library (the teacher's own matrix package is float64-only), so this
// package is the one place in the module that falls back to the standard
// library's math/big rather than a third-party dependency; see DESIGN.md for
// the full justification.
package ratlinalg
