// Package dd implements C3, the deductive database: a forward-chaining rule
// engine over predicate.Predicate facts, grounded on original_source/dd.py's
// wrapper semantics (add_point/add_<predicate>, an idempotent Run() safe to
// call repeatedly, and Get<Predicate>() query methods returning provenance
// as a rule name plus parent fact ids).
//
// Facts are keyed by Predicate.Canonical() throughout, and every derived
// fact is recorded in a factgraph.Graph node alongside the rule that
// produced it, so the proof coordinator (package proof) can render a
// complete, topologically-ordered justification for any fact the engine
// holds.
//
// Evaluation is semi-naive in spirit: Run drains a queue of facts added
// since the last drain, testing each only against the rule set once, rather
// than re-scanning the whole fact base from scratch on every call.
package dd
