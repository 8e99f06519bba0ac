package knapsack

import (
	"iter"

	"github.com/corvidlabs/ddbb/ddtypes"
)

// Relaxation merges knapsack states by keeping the largest remaining
// capacity: any decision feasible from a smaller capacity is also
// feasible from a larger one, so the maximum dominates every input.
type Relaxation struct {
	inst Instance
}

// NewRelaxation wraps inst as a Relaxation.
func NewRelaxation(inst Instance) Relaxation {
	return Relaxation{inst: inst}
}

// MergeStates implements contracts.Relaxation.
func (r Relaxation) MergeStates(states iter.Seq[int]) int {
	merged := ddtypes.MinInt
	states(func(s int) bool {
		if s > merged {
			merged = s
		}

		return true
	})

	return merged
}

// RelaxEdge implements contracts.Relaxation. Retargeting an edge onto
// a state with at least as much capacity never changes what an item's
// inclusion is worth, so the original weight already holds.
func (r Relaxation) RelaxEdge(from, to, merged int, d ddtypes.Decision, originalCost int) int {
	return originalCost
}

// FastUpperBound implements contracts.Relaxation: the sum of every
// unassigned item's value, ignoring capacity entirely. This is only a
// valid upper bound because item values are non-negative.
func (r Relaxation) FastUpperBound(state int, unassigned map[int]struct{}) int {
	total := 0
	for v := range unassigned {
		total = ddtypes.SaturatedAdd(total, r.inst.Items[v].Value)
	}

	return total
}
