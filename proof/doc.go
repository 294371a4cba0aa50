// Package proof implements C5, the proof coordinator of spec.md §4.4: it
// owns a Problem's predicate table, goal set, and possibility caches, drives
// the saturation loop that alternates the deductive database (package dd)
// and the algebraic reasoner (package ar), and renders a topologically
// ordered, deterministic proof once every goal is known.
//
// Problem is the single owner of all mutable state a proof touches — the
// two engines, the fact table, and the deduction buffer — matching §5's
// "single-threaded and synchronous" concurrency model; nothing here is
// guarded by a mutex, unlike dd.Engine and factgraph.Graph, which carry one
// in the teacher's style regardless because they are reused standalone.
package proof
