package contracts

import (
	"iter"

	"github.com/corvidlabs/ddbb/ddtypes"
)

// Problem describes a labeled transition system over a fixed set of
// integer variables with an additive objective. T is the client's
// state type; it must be comparable so the compiler can key maps on it.
type Problem[T comparable] interface {
	// NbVars returns the number of variables to assign, n.
	NbVars() int

	// InitialState returns the root state of the whole problem.
	InitialState() T

	// InitialValue returns the objective value at the root state.
	InitialValue() int

	// Domain enumerates the legal values for variable at state. An
	// empty sequence means the variable cannot be assigned from state
	// (the subproblem is infeasible along this path).
	Domain(state T, variable int) iter.Seq[int]

	// Transition returns the state reached by applying decision to state.
	Transition(state T, decision ddtypes.Decision) T

	// TransitionCost returns the objective contribution of applying
	// decision to state; it is added to the longest-path value.
	TransitionCost(state T, decision ddtypes.Decision) int
}

// Relaxation over-approximates sets of states into a single merged
// state, for use when a layer must be shrunk without dropping paths.
type Relaxation[T comparable] interface {
	// MergeStates returns a state that over-approximates every state
	// in states: any feasible continuation from any input state must
	// remain feasible from the merged state, and the merged state's
	// achievable objective must dominate every input's.
	MergeStates(states iter.Seq[T]) T

	// RelaxEdge returns the new weight for an edge whose target is
	// being retargeted from `to` onto `merged` by decision, given the
	// edge's original weight. The result must be >= originalCost.
	RelaxEdge(from, to, merged T, decision ddtypes.Decision, originalCost int) int

	// FastUpperBound returns a cheap, optimistic estimate of the best
	// objective contribution still achievable from state over the
	// variables in unassigned. Implementations that have nothing
	// cheaper to offer may embed UnboundedRelaxation to return MaxInt.
	FastUpperBound(state T, unassigned map[int]struct{}) int
}

// StateRanking is a total order over states used to break ties in the
// frontier and to decide, during width control, which states are
// worth keeping. Compare(a, b) > 0 means a should be preferred to keep
// over b.
type StateRanking[T comparable] interface {
	Compare(a, b T) int
}

// VariableHeuristic decides which unassigned variable to branch on
// next, given the states present in the layer being built.
type VariableHeuristic[T comparable] interface {
	// NextVariable returns the next variable to assign. The second
	// return value is false when no valid choice exists for the
	// current layer, in which case the compilation aborts cleanly.
	NextVariable(unassigned map[int]struct{}, states iter.Seq[T]) (int, bool)
}

// WidthHeuristic computes the maximum layer width to allow for a
// subproblem rooted at state, evaluated once per subproblem.
type WidthHeuristic[T comparable] interface {
	MaximumWidth(state T) int
}

// UnboundedRelaxation is embeddable in a Relaxation implementation that
// has no cheap upper-bound estimate to offer; it implements
// FastUpperBound as the permissive default (MaxInt).
type UnboundedRelaxation[T comparable] struct{}

// FastUpperBound always returns ddtypes.MaxInt.
func (UnboundedRelaxation[T]) FastUpperBound(T, map[int]struct{}) int {
	return ddtypes.MaxInt
}

// FixedWidth is a WidthHeuristic that returns the same width for every
// subproblem, regardless of state.
type FixedWidth[T comparable] int

// MaximumWidth implements WidthHeuristic.
func (w FixedWidth[T]) MaximumWidth(T) int {
	return int(w)
}
