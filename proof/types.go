package proof

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/synthgeo/ar"
	"github.com/katalvlaran/synthgeo/dd"
	"github.com/katalvlaran/synthgeo/point"
	"github.com/katalvlaran/synthgeo/predicate"
)

// Deduction is the record spec.md §3 defines: a predicate, the canonical
// strings of the predicates it was derived from (empty for an axiom), and
// the rule name that produced it. Two Deductions are equal (for the
// already-recorded check in flushOne) iff all three fields agree, parent
// sets compared without regard to order.
type Deduction struct {
	Pred    predicate.Predicate
	Parents []string
	Rule    string
}

func sameParentSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func (d Deduction) equal(o Deduction) bool {
	return d.Pred.Canonical() == o.Pred.Canonical() && d.Rule == o.Rule && sameParentSet(d.Parents, o.Parents)
}

// Problem is the saturation state owned by C5: every known predicate with
// its derivation history, the goal set, the two validity caches, and the
// owned DD/AR engines. Construct with New.
type Problem struct {
	points map[string]point.Point
	order  []point.Point // sorted by name, for deterministic sweep order

	goals map[string]bool

	byCanonical map[string]predicate.Predicate
	predicates  map[string][]Deduction
	possible    map[string]bool
	impossible  map[string]bool

	buffer []Deduction

	dd  *dd.Engine
	ar  *ar.AR
	log *logrus.Logger

	searchARCap int // 0 means unbounded; see SetSearchARCap
}

func newEmptyProblem() *Problem {
	return &Problem{
		points:      map[string]point.Point{},
		goals:       map[string]bool{},
		byCanonical: map[string]predicate.Predicate{},
		predicates:  map[string][]Deduction{},
		possible:    map[string]bool{},
		impossible:  map[string]bool{},
		dd:          dd.New(),
		ar:          ar.New(),
		log:         logrus.StandardLogger(),
	}
}

// SetLogger overrides the logrus logger used for diagnostics (Impossible
// drops, DD rule firings, saturation iteration summaries). The default is
// logrus's standard logger.
func (p *Problem) SetLogger(l *logrus.Logger) { p.log = l }

// SetSearchARCap bounds the number of points SearchAR sweeps over (spec.md
// §5's "callers bound cost by bounding the point count"). n<=0 means
// unbounded. Points beyond the cap are dropped in bfsPointOrder's
// deterministic order, so which points are kept does not depend on map
// iteration or call order.
func (p *Problem) SetSearchARCap(n int) { p.searchARCap = n }

// Points returns the problem's points, sorted by name.
func (p *Problem) Points() []point.Point { return append([]point.Point(nil), p.order...) }

// Known reports whether canon is in predicates, and the predicate value if
// so.
func (p *Problem) Known(canon string) (predicate.Predicate, bool) {
	pr, ok := p.byCanonical[canon]
	return pr, ok
}

// Predicates returns every predicate currently known, in no particular
// order.
func (p *Problem) Predicates() []predicate.Predicate {
	out := make([]predicate.Predicate, 0, len(p.byCanonical))
	for _, pr := range p.byCanonical {
		out = append(out, pr)
	}
	return out
}
