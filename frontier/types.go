package frontier

import (
	"github.com/corvidlabs/ddbb/contracts"
	"github.com/corvidlabs/ddbb/ddtypes"
)

// Frontier is a priority queue of open subproblems ordered by upper
// bound, ties broken by the client's StateRanking.
type Frontier[T comparable] interface {
	// Push adds sub to the frontier.
	Push(sub ddtypes.SubProblem[T])

	// Pop removes and returns the most promising subproblem. The
	// second return value is false when the frontier is empty.
	Pop() (ddtypes.SubProblem[T], bool)

	// Clear removes every entry.
	Clear()

	// Size returns the number of entries currently held.
	Size() int
}

// more reports whether a is strictly more promising than b under the
// frontier's total order: greater upper bound wins; ties are broken by
// ranking.Compare, where a positive result means a is preferred.
func more[T comparable](a, b ddtypes.SubProblem[T], ranking contracts.StateRanking[T]) bool {
	if a.UB != b.UB {
		return a.UB > b.UB
	}

	return ranking.Compare(a.State, b.State) > 0
}
