package proof

import "sort"

// runDDDriver is the built-in DD driver adapter of spec.md §4.5: it runs the
// deductive database to its current fixed point, then enqueues one
// Deduction per fact the engine holds that this Problem has not yet
// registered, translating the engine's (rule, parent fact ids) pair
// directly — dd.Engine uses a predicate's Canonical() string as its fact
// id, so no separate id-to-predicate bookkeeping is needed here.
func (p *Problem) runDDDriver() {
	p.dd.Run()
	facts := p.dd.All()
	sort.Slice(facts, func(i, j int) bool { return facts[i].Canonical() < facts[j].Canonical() })
	for _, fact := range facts {
		canon := fact.Canonical()
		if _, known := p.byCanonical[canon]; known {
			continue
		}
		_, rule, parents, ok := p.dd.Get(canon)
		if !ok {
			continue
		}
		sort.Strings(parents)
		p.AddDeduction(Deduction{Pred: fact, Parents: parents, Rule: rule})
	}
}

// Saturate runs the main loop of spec.md §4.4: each iteration runs the DD
// driver, then (if still unsolved) SearchAR, then flushes the buffer;
// it stops when every goal is proved, when a pass produces no growth, or
// after maxIters iterations, whichever comes first. Calling Saturate on an
// already-solved Problem is a no-op.
func (p *Problem) Saturate(maxIters int) {
	if p.IsSolved() {
		return
	}
	for iter := 0; iter < maxIters; iter++ {
		before := len(p.predicates)

		p.runDDDriver()
		if !p.IsSolved() {
			p.SearchAR()
		}
		p.FlushDeductions()

		p.log.WithFields(map[string]interface{}{
			"iteration": iter + 1,
			"known":     len(p.predicates),
		}).Info("saturation pass complete")

		if p.IsSolved() {
			return
		}
		if len(p.predicates) == before {
			return
		}
	}
}
