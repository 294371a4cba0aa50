// Package point provides the numeric oracle the rest of this module treats
// as ground truth: named 2D points, and the distance/angle/orientation
// primitives predicate.Predicate.IsValid is built on.
//
// Points are immutable after construction: once named and placed, a Point's
// coordinates never change, which lets every other package treat a Point as
// a plain comparable value (safe as a map key, safe to share across
// goroutines without copying).
package point
