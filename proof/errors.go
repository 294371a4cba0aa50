package proof

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAxiom is returned by New when an initial predicate fails its
// own numeric validity check (spec.md §4.4, §7).
var ErrInvalidAxiom = errors.New("proof: invalid axiom")

// ErrUnreachableGoal is returned by RenderProof when saturation finished
// without a derivation chain for every goal (spec.md §7, §4.4 step 4).
var ErrUnreachableGoal = errors.New("proof: unreachable goal")

// unreachableGoalError carries the specific goals that could not be
// rendered, so callers can report them without parsing the error string.
type unreachableGoalError struct {
	goals []string
}

func (e *unreachableGoalError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnreachableGoal, strings.Join(e.goals, ", "))
}

func (e *unreachableGoalError) Unwrap() error { return ErrUnreachableGoal }

// Goals returns the canonical strings of the goals RenderProof could not
// justify.
func (e *unreachableGoalError) Goals() []string { return append([]string(nil), e.goals...) }
