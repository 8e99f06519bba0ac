package knapsack

import (
	"iter"

	"github.com/corvidlabs/ddbb/ddtypes"
)

// Problem is a contracts.Problem[int] over a fixed Instance. The
// state is the remaining capacity; variable i corresponds to Items[i].
type Problem struct {
	inst Instance
}

// NewProblem wraps inst as a Problem.
func NewProblem(inst Instance) Problem {
	return Problem{inst: inst}
}

// NbVars implements contracts.Problem.
func (p Problem) NbVars() int { return len(p.inst.Items) }

// InitialState implements contracts.Problem.
func (p Problem) InitialState() int { return p.inst.Capacity }

// InitialValue implements contracts.Problem.
func (p Problem) InitialValue() int { return 0 }

// Domain implements contracts.Problem: leaving the item out (0) is
// always legal, taking it (1) requires it to still fit.
func (p Problem) Domain(state int, variable int) iter.Seq[int] {
	fits := p.inst.Items[variable].Weight <= state

	return func(yield func(int) bool) {
		if !yield(0) {
			return
		}
		if fits {
			yield(1)
		}
	}
}

// Transition implements contracts.Problem.
func (p Problem) Transition(state int, d ddtypes.Decision) int {
	if d.Val == 1 {
		return state - p.inst.Items[d.Var].Weight
	}

	return state
}

// TransitionCost implements contracts.Problem.
func (p Problem) TransitionCost(state int, d ddtypes.Decision) int {
	if d.Val == 1 {
		return p.inst.Items[d.Var].Value
	}

	return 0
}
