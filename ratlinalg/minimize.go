package ratlinalg

import "sort"

// MinimizeWitness shrinks a candidate support set of row ids down to a
// minimal subset whose span still contains target, mirroring the original
// Python AR's minimize_parents step (original_source/ar.py): a deduction's
// "parents" should be the smallest defensible justification, not every fact
// that happened to be in the matrix when the row was tested.
//
// Ties are broken deterministically by insertion order: rows are tried for
// removal starting from the most recently added (highest id) back to the
// earliest, so earlier-established facts are preferentially kept when more
// than one minimal subset exists. rows supplies the original row vector for
// every id that may appear in support.
func MinimizeWitness(rows map[int]Vector, support []int, target Vector) []int {
	sorted := append([]int(nil), support...)
	sort.Ints(sorted)
	kept := make(map[int]bool, len(sorted))
	for _, id := range sorted {
		kept[id] = true
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		id := sorted[i]
		delete(kept, id)
		if !spanContains(rows, kept, target) {
			kept[id] = true
		}
	}
	out := make([]int, 0, len(kept))
	for id := range kept {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func spanContains(rows map[int]Vector, ids map[int]bool, target Vector) bool {
	ordered := make([]int, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Ints(ordered)
	sys := NewSystem()
	for _, id := range ordered {
		sys.AddRow(rows[id])
	}
	ok, _ := sys.InSpan(target)
	return ok
}
