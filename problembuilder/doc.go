// Package problembuilder is the in-module stand-in for the external parser
// collaborator of spec.md §6: a fluent, functional-options constructor that
// assembles a *proof.Problem from points, axioms and goals without a text
// grammar, while leaving axiom validity and predicate construction entirely
// to the predicate and proof packages.
package problembuilder
