package proof

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/synthgeo/point"
	"github.com/katalvlaran/synthgeo/predicate"
)

// New constructs a Problem. Every initial predicate must satisfy IsValid;
// if any do not, New returns a *multierror.Error wrapping ErrInvalidAxiom
// once per offending predicate rather than failing on the first one, so a
// caller sees every inconsistent axiom at once. Valid axioms are recorded
// with Deduction(p, nil, "axiom") and immediately flushed into dd/ar.
func New(points []point.Point, initial []predicate.Predicate, goals []predicate.Predicate) (*Problem, error) {
	p := newEmptyProblem()
	for _, pt := range points {
		p.points[pt.Name] = pt
	}
	p.order = append([]point.Point(nil), points...)
	sort.Slice(p.order, func(i, j int) bool { return p.order[i].Name < p.order[j].Name })

	for _, g := range goals {
		p.goals[g.Canonical()] = true
	}

	var merr *multierror.Error
	for _, ax := range initial {
		if !ax.IsValid() {
			merr = multierror.Append(merr, fmt.Errorf("%w: %s", ErrInvalidAxiom, ax.String()))
			continue
		}
		p.AddDeduction(Deduction{Pred: ax, Rule: "axiom"})
	}
	if merr.ErrorOrNil() != nil {
		return nil, merr.ErrorOrNil()
	}
	p.FlushDeductions()
	return p, nil
}

// AddDeduction appends d to the pending buffer.
func (p *Problem) AddDeduction(d Deduction) {
	p.buffer = append(p.buffer, d)
}

// FlushDeductions drains the buffer, applying the six-step discipline of
// spec.md §4.4 to each pending Deduction. Sub-predicate deductions enqueued
// during step 6 are drained in the same call (the loop continues until the
// buffer is empty), which is what makes the "recursively" requirement hold
// without actual recursive function calls.
func (p *Problem) FlushDeductions() {
	for len(p.buffer) > 0 {
		d := p.buffer[0]
		p.buffer = p.buffer[1:]
		p.flushOne(d)
	}
}

func (p *Problem) flushOne(d Deduction) {
	canon := d.Pred.Canonical()

	for _, existing := range p.predicates[canon] {
		if existing.equal(d) {
			return
		}
	}
	if p.impossible[canon] {
		return
	}
	if !p.possible[canon] {
		if !d.Pred.IsValid() {
			p.impossible[canon] = true
			p.log.WithFields(logFields(d)).Warn("Impossible: predicate failed validity, dropped")
			return
		}
		p.possible[canon] = true
	}

	p.predicates[canon] = append(p.predicates[canon], d)
	p.byCanonical[canon] = d.Pred
	p.dd.AddPredicate(d.Pred)
	p.ar.AddPredicate(d.Pred)
	p.log.WithFields(logFields(d)).Debug("predicate registered")

	for _, sub := range d.Pred.SubPredicates() {
		p.AddDeduction(Deduction{Pred: sub, Parents: []string{canon}, Rule: "sub_deduction"})
	}
}

// CanDeduce reports whether p is already known. As a side effect, if p is
// not known but numerically valid, it queries the algebraic reasoner and
// enqueues any resulting Deduction — which will not be reflected in
// predicates until the next FlushDeductions call, matching spec.md §4.4's
// literal contract (the return value answers "known right now", not "will
// be known after this call").
func (p *Problem) CanDeduce(pr predicate.Predicate) bool {
	canon := pr.Canonical()
	if _, known := p.byCanonical[canon]; known {
		return true
	}
	if !pr.IsValid() {
		return false
	}
	if ok, parents := p.ar.TryDeduce(pr); ok {
		rule := "AR"
		if len(parents) == 0 {
			rule = "AR_implicit"
		}
		p.AddDeduction(Deduction{Pred: pr, Parents: parents, Rule: rule})
	}
	return false
}

// IsSolved reports whether every goal is currently in predicates.
func (p *Problem) IsSolved() bool {
	for g := range p.goals {
		if _, ok := p.byCanonical[g]; !ok {
			return false
		}
	}
	return true
}

func logFields(d Deduction) map[string]interface{} {
	return map[string]interface{}{
		"predicate": d.Pred.String(),
		"rule":      d.Rule,
		"parents":   d.Parents,
	}
}
