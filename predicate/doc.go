// Package predicate implements C2, the predicate algebra: the canonical,
// hashable representation of every geometric relation in §3 of the spec,
// its decomposition into sub-predicates, its algebraic-row emission for the
// AR engine, and its numeric validity oracle.
//
// A Predicate is a tagged variant (see Kind) rather than a class hierarchy:
// construction never fails, and every per-kind operation (Canonical, IsValid,
// AngleRows, RatioRows, SubPredicates) switches on Kind. Two Predicate values
// that describe the same relation up to its declared symmetries always
// produce the same Canonical() string; callers should use Canonical() as the
// map key everywhere a predicate needs identity, since Predicate itself
// embeds a slice and is not a comparable Go value.
package predicate
