package dd

import (
	"sync"

	"github.com/katalvlaran/synthgeo/factgraph"
	"github.com/katalvlaran/synthgeo/predicate"
)

// Engine is the forward-chaining fact base. The zero value is not usable;
// construct with New. Safe for concurrent use (guarded by mu), matching the
// teacher's core.Graph style of carrying a mutex even where the coordinator
// above it is presently single-threaded.
type Engine struct {
	mu     sync.Mutex
	facts  map[string]predicate.Predicate
	byKind map[predicate.Kind]map[string]predicate.Predicate
	graph  *factgraph.Graph
	queue  []predicate.Predicate
}

// New returns an empty Engine.
func New() *Engine {
	return &Engine{
		facts:  map[string]predicate.Predicate{},
		byKind: map[predicate.Kind]map[string]predicate.Predicate{},
		graph:  factgraph.New(),
	}
}

type derivation struct {
	pred    predicate.Predicate
	rule    string
	parents []string
}

func (e *Engine) insert(p predicate.Predicate, rule string, parents []string) bool {
	if _, exists := e.facts[p.Canonical()]; exists {
		return false
	}
	e.facts[p.Canonical()] = p
	if e.byKind[p.Kind()] == nil {
		e.byKind[p.Kind()] = map[string]predicate.Predicate{}
	}
	e.byKind[p.Kind()][p.Canonical()] = p
	e.graph.AddNode(p.Canonical(), rule, parents)
	e.queue = append(e.queue, p)
	return true
}

// AddPredicate records p as a ground axiom (rule "axiom", no parents) if it
// is not already present, and reports whether it was newly added. Re-adding
// a known predicate is a no-op, matching spec.md §3's "never re-derived
// under a different provenance" invariant: the first derivation wins.
func (e *Engine) AddPredicate(p predicate.Predicate) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.insert(p, "axiom", nil)
}

// Has reports whether canon is already a known fact.
func (e *Engine) Has(canon string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.facts[canon]
	return ok
}

// Get returns the fact stored under canon, its rule name, and its parent
// fact ids, or ok=false if canon is unknown.
func (e *Engine) Get(canon string) (p predicate.Predicate, rule string, parents []string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok = e.facts[canon]
	if !ok {
		return predicate.Predicate{}, "", nil, false
	}
	rule, parents, _ = e.graph.Rule(canon)
	return p, rule, parents, true
}

// All returns every fact currently known, in no particular order.
func (e *Engine) All() []predicate.Predicate {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]predicate.Predicate, 0, len(e.facts))
	for _, p := range e.facts {
		out = append(out, p)
	}
	return out
}

// ByKind returns every known fact of the given kind, in no particular order.
func (e *Engine) ByKind(k predicate.Kind) []predicate.Predicate {
	e.mu.Lock()
	defer e.mu.Unlock()
	m := e.byKind[k]
	out := make([]predicate.Predicate, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	return out
}

// Graph exposes the underlying provenance graph for the proof renderer.
func (e *Engine) Graph() *factgraph.Graph { return e.graph }

// Run drains the queue of facts added since the last call, applying the
// fixed rule set to each and inserting every newly-derived fact, until no
// new fact is produced. It is always safe to call again: with an empty
// queue it is a no-op, and a derived fact already present is silently
// skipped (insert returns false), so repeated calls are idempotent.
func (e *Engine) Run() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.queue) > 0 {
		p := e.queue[0]
		e.queue = e.queue[1:]
		for _, d := range e.applyRules(p) {
			e.insert(d.pred, d.rule, d.parents)
		}
	}
}
