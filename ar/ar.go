package ar

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/synthgeo/predicate"
	"github.com/katalvlaran/synthgeo/ratlinalg"
)

// AR owns the two linear systems and enough bookkeeping to answer "is this
// predicate implied by everything added so far, and if so by what" (the
// Deduce contract of spec.md §4.3). Row ids are internal to each system; AR
// maps them back to the canonical string of the predicate that contributed
// the row, since that is the identity callers (the proof coordinator) need
// for provenance.
type AR struct {
	angles *ratlinalg.System
	ratios *ratlinalg.System

	angleRows   map[int]ratlinalg.Vector
	angleSource map[int]string

	ratioRows   map[int]ratlinalg.Vector
	ratioSource map[int]string
}

// New returns an AR with both systems empty.
func New() *AR {
	return &AR{
		angles:      ratlinalg.NewSystem(),
		ratios:      ratlinalg.NewSystem(),
		angleRows:   map[int]ratlinalg.Vector{},
		angleSource: map[int]string{},
		ratioRows:   map[int]ratlinalg.Vector{},
		ratioSource: map[int]string{},
	}
}

func angleRowToVector(row predicate.AngleRow) ratlinalg.Vector {
	v := ratlinalg.NewVector()
	for k, c := range row.Coeffs {
		v.Add(k.String(), c)
	}
	v.SetConst(row.Const)
	return v
}

func ratioRowToVector(row predicate.RatioRow) ratlinalg.Vector {
	v := ratlinalg.NewVector()
	for k, c := range row.Coeffs {
		v.Add(k.String(), c)
	}
	return v
}

// AddPredicate folds every linear row p contributes (possibly zero, possibly
// many, depending on p.Kind — see predicate.AngleRows/RatioRows) into the two
// systems. Adding the same predicate twice is safe: rows already in span
// fold in without changing what is derivable, matching the DD engine's own
// idempotent-add contract in spec.md §4.2.
func (a *AR) AddPredicate(p predicate.Predicate) {
	for _, row := range p.AngleRows() {
		v := angleRowToVector(row)
		id := a.angles.AddRow(v)
		a.angleRows[id] = v
		a.angleSource[id] = p.Canonical()
	}
	for _, row := range p.RatioRows() {
		v := ratioRowToVector(row)
		id := a.ratios.AddRow(v)
		a.ratioRows[id] = v
		a.ratioSource[id] = p.Canonical()
	}
}

// TryDeduce reports whether p follows algebraically from everything added so
// far. A predicate contributing no rows at all (Sameclock, and any kind AR
// has nothing to say about) is never deducible by AR: it returns false so
// the caller falls back to DD or ground-truth evaluation. Parents is the
// deduplicated, sorted set of canonical strings of predicates whose rows
// were used, after minimizing each row's own witness independently.
func (a *AR) TryDeduce(p predicate.Predicate) (ok bool, parents []string) {
	angleRows := p.AngleRows()
	ratioRows := p.RatioRows()
	if len(angleRows) == 0 && len(ratioRows) == 0 {
		return false, nil
	}

	parentSet := map[string]bool{}
	for _, row := range angleRows {
		target := angleRowToVector(row)
		inSpan, witness := a.angles.InSpan(target)
		if !inSpan {
			return false, nil
		}
		support := supportIDs(witness)
		for _, id := range ratlinalg.MinimizeWitness(a.angleRows, support, target) {
			parentSet[a.angleSource[id]] = true
		}
	}
	for _, row := range ratioRows {
		target := ratioRowToVector(row)
		inSpan, witness := a.ratios.InSpan(target)
		if !inSpan {
			return false, nil
		}
		support := supportIDs(witness)
		for _, id := range ratlinalg.MinimizeWitness(a.ratioRows, support, target) {
			parentSet[a.ratioSource[id]] = true
		}
	}

	parents = make([]string, 0, len(parentSet))
	for c := range parentSet {
		parents = append(parents, c)
	}
	sort.Strings(parents)
	return true, parents
}

func supportIDs(witness map[int]*big.Rat) []int {
	ids := make([]int, 0, len(witness))
	for id := range witness {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
