package proof

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/synthgeo/factgraph"
)

// rulePriority is the tie-break table from spec.md §4.4 step 3; any rule
// name not listed (every DD transitivity/chaining rule this module adds,
// and AR_implicit) gets the "default" priority.
var rulePriority = map[string]int{
	"axiom":         0,
	"rfl":           1,
	"sub_deduction": 2,
	"AR":            10,
	"sym":           20,
}

const defaultRulePriority = 5

func priorityOf(rule string) int {
	if pr, ok := rulePriority[rule]; ok {
		return pr
	}
	return defaultRulePriority
}

// goalReachable returns every predicate canonical string reachable by
// following, for each predicate, the union of parent sets across ALL of its
// recorded deductions, starting from the goal set (step 1).
func (p *Problem) goalReachable() map[string]bool {
	reachable := map[string]bool{}
	var walk func(string)
	walk = func(canon string) {
		if reachable[canon] {
			return
		}
		reachable[canon] = true
		for _, d := range p.predicates[canon] {
			for _, parent := range d.Parents {
				walk(parent)
			}
		}
	}
	for g := range p.goals {
		walk(g)
	}
	return reachable
}

// RenderProof renders the topologically-sorted proof text of spec.md §4.4
// step 5, or returns an error wrapping ErrUnreachableGoal if not every goal
// can be justified from the reachable predicate set. useColor enables ANSI
// highlighting of goal lines (package fatih/color); pass false for
// non-terminal output.
func (p *Problem) RenderProof(useColor bool) (string, error) {
	reachable := p.goalReachable()

	used := map[string]bool{}
	chosen := map[string]Deduction{}
	for canon := range reachable {
		for _, d := range p.predicates[canon] {
			if len(d.Parents) == 0 {
				used[canon] = true
				chosen[canon] = d
				break
			}
		}
	}

	// Visit in canonical order so which derivation a pass picks does not
	// depend on map iteration order.
	reachableCanons := make([]string, 0, len(reachable))
	for canon := range reachable {
		reachableCanons = append(reachableCanons, canon)
	}
	sort.Strings(reachableCanons)

	for {
		progressed := false
		for _, canon := range reachableCanons {
			if used[canon] {
				continue
			}
			best, found := bestDerivation(p.predicates[canon], used)
			if !found {
				continue
			}
			used[canon] = true
			chosen[canon] = best
			progressed = true
		}
		if !progressed {
			break
		}
	}

	var missing []string
	for g := range p.goals {
		if !used[g] {
			missing = append(missing, g)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", &unreachableGoalError{goals: missing}
	}

	usedCanons := make([]string, 0, len(used))
	for canon := range used {
		usedCanons = append(usedCanons, canon)
	}
	sort.Strings(usedCanons)

	graph := factgraph.New()
	for _, canon := range usedCanons {
		d := chosen[canon]
		graph.AddNode(canon, d.Rule, d.Parents)
	}
	order, err := graph.TopoOrder()
	if err != nil {
		return "", fmt.Errorf("proof: rendering a sound proof produced a cycle: %w", err)
	}

	lineNumber := make(map[string]int, len(order))
	for i, canon := range order {
		lineNumber[canon] = i + 1
	}

	highlight := color.New(color.FgGreen).SprintFunc()
	var b strings.Builder
	for i, canon := range order {
		d := chosen[canon]
		parentRefs := make([]string, 0, len(d.Parents))
		for _, parentCanon := range d.Parents {
			parentRefs = append(parentRefs, "["+strconv.Itoa(lineNumber[parentCanon])+"]")
		}
		line := fmt.Sprintf("[%d] %s  | %s %s", i+1, d.Pred.String(), d.Rule, strings.Join(parentRefs, ","))
		if useColor && p.goals[canon] {
			line = highlight(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// bestDerivation finds, among derivations whose every parent is already in
// used, the one with lowest rule priority (ties broken by the derivation
// list's recorded order, which is append-only and therefore deterministic).
func bestDerivation(deductions []Deduction, used map[string]bool) (Deduction, bool) {
	var best Deduction
	found := false
	for _, d := range deductions {
		if !allIn(d.Parents, used) {
			continue
		}
		if !found || priorityOf(d.Rule) < priorityOf(best.Rule) {
			best = d
			found = true
		}
	}
	return best, found
}

func allIn(items []string, set map[string]bool) bool {
	for _, it := range items {
		if !set[it] {
			return false
		}
	}
	return true
}
