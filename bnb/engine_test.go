// Package bnb_test drives Engine end to end over a small in-package
// 0/1 knapsack, independent of the knapsack package above bnb.
package bnb_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/ddbb/bnb"
	"github.com/corvidlabs/ddbb/contracts"
	"github.com/corvidlabs/ddbb/ddtypes"
	"github.com/corvidlabs/ddbb/frontier"
)

type knapsack struct {
	weights  []int
	values   []int
	capacity int
}

func (p knapsack) NbVars() int       { return len(p.weights) }
func (p knapsack) InitialState() int { return p.capacity }
func (p knapsack) InitialValue() int { return 0 }

func (p knapsack) Domain(state int, variable int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !yield(0) {
			return
		}
		if p.weights[variable] <= state {
			yield(1)
		}
	}
}

func (p knapsack) Transition(state int, d ddtypes.Decision) int {
	if d.Val == 1 {
		return state - p.weights[d.Var]
	}

	return state
}

func (p knapsack) TransitionCost(state int, d ddtypes.Decision) int {
	if d.Val == 1 {
		return p.values[d.Var]
	}

	return 0
}

type relaxation struct{ values []int }

func (r relaxation) MergeStates(states iter.Seq[int]) int {
	best := ddtypes.MinInt
	states(func(s int) bool {
		if s > best {
			best = s
		}

		return true
	})

	return best
}

func (r relaxation) RelaxEdge(from, to, merged int, d ddtypes.Decision, originalCost int) int {
	return originalCost
}

func (r relaxation) FastUpperBound(state int, unassigned map[int]struct{}) int {
	total := 0
	for v := range unassigned {
		total = ddtypes.SaturatedAdd(total, r.values[v])
	}

	return total
}

type ranking struct{}

func (ranking) Compare(a, b int) int { return a - b }

type ascendingHeuristic struct{}

func (ascendingHeuristic) NextVariable(unassigned map[int]struct{}, _ iter.Seq[int]) (int, bool) {
	best := -1
	for v := range unassigned {
		if best == -1 || v < best {
			best = v
		}
	}
	if best == -1 {
		return 0, false
	}

	return best, true
}

func newEngine(t *testing.T, p knapsack, nbThreads, width int) *bnb.Engine[int] {
	t.Helper()

	var problem contracts.Problem[int] = p
	var relax contracts.Relaxation[int] = relaxation{values: p.values}

	e, err := bnb.NewEngine(bnb.Config[int]{
		NbThreads:      nbThreads,
		Problem:        problem,
		Relaxation:     relax,
		VarHeuristic:   ascendingHeuristic{},
		Ranking:        ranking{},
		WidthHeuristic: contracts.FixedWidth[int](width),
		Frontier:       frontier.NewSimpleFrontier[int](ranking{}),
	})
	require.NoError(t, err)

	return e
}

func TestEngine_MaximizeSingleThreadFindsOptimum(t *testing.T) {
	p := knapsack{weights: []int{2, 3, 4}, values: []int{3, 4, 5}, capacity: 5}
	e := newEngine(t, p, 1, 100)
	e.Maximize()

	v, ok := e.BestValue()
	require.True(t, ok)
	require.Equal(t, 7, v)

	sol, ok := e.BestSolution()
	require.True(t, ok)
	require.Len(t, sol, 3)
}

func TestEngine_MaximizeParallelMatchesSequential(t *testing.T) {
	p := knapsack{
		weights:  []int{95, 4, 60, 32, 23, 72, 80, 62, 65, 46},
		values:   []int{55, 10, 47, 5, 4, 50, 8, 61, 85, 87},
		capacity: 269,
	}

	seq := newEngine(t, p, 1, 2)
	seq.Maximize()
	seqValue, ok := seq.BestValue()
	require.True(t, ok)

	par := newEngine(t, p, 4, 2)
	par.Maximize()
	parValue, ok := par.BestValue()
	require.True(t, ok)

	require.Equal(t, seqValue, parValue, "P5: result must not depend on thread count")
	require.Equal(t, 295, parValue)

	sol, ok := seq.BestSolution()
	require.True(t, ok)
	total := 0
	for i, w := range p.weights {
		total += w * sol[i]
	}
	require.LessOrEqual(t, total, p.capacity)
}

func TestEngine_MaximizeNarrowWidthStillExact(t *testing.T) {
	p := knapsack{weights: []int{2, 3, 4}, values: []int{3, 4, 5}, capacity: 5}
	e := newEngine(t, p, 2, 1)
	e.Maximize()

	v, ok := e.BestValue()
	require.True(t, ok)
	require.Equal(t, 7, v, "P4: narrow width must not change the optimum, only the work needed")
}

func TestEngine_ZeroCapacity(t *testing.T) {
	p := knapsack{weights: []int{5, 7}, values: []int{10, 20}, capacity: 0}
	e := newEngine(t, p, 2, 10)
	e.Maximize()

	v, ok := e.BestValue()
	require.True(t, ok)
	require.Equal(t, 0, v)
}

func TestEngine_SingleItemTooHeavy(t *testing.T) {
	p := knapsack{weights: []int{5}, values: []int{7}, capacity: 4}
	e := newEngine(t, p, 1, 10)
	e.Maximize()

	v, ok := e.BestValue()
	require.True(t, ok)
	require.Equal(t, 0, v)

	sol, ok := e.BestSolution()
	require.True(t, ok)
	require.Equal(t, 0, sol[0])
}

func TestEngine_TwoItemsBothFit(t *testing.T) {
	p := knapsack{weights: []int{1, 1}, values: []int{5, 5}, capacity: 2}
	e := newEngine(t, p, 2, 10)
	e.Maximize()

	v, ok := e.BestValue()
	require.True(t, ok)
	require.Equal(t, 10, v)
}

func TestEngine_ExploredCountsWork(t *testing.T) {
	p := knapsack{weights: []int{2, 3, 4}, values: []int{3, 4, 5}, capacity: 5}
	e := newEngine(t, p, 1, 100)
	e.Maximize()

	require.Greater(t, e.Explored(), 0)
	require.Equal(t, e.LowerBound(), e.UpperBound(), "search must close the gap at termination")
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	p := knapsack{weights: []int{1}, values: []int{1}, capacity: 1}
	var problem contracts.Problem[int] = p

	_, err := bnb.NewEngine(bnb.Config[int]{
		NbThreads: 0,
		Problem:   problem,
		Frontier:  frontier.NewSimpleFrontier[int](ranking{}),
	})
	require.ErrorIs(t, err, bnb.ErrInvalidThreads)

	_, err = bnb.NewEngine(bnb.Config[int]{
		NbThreads: 1,
		Problem:   problem,
	})
	require.ErrorIs(t, err, bnb.ErrNilFrontier)
}
