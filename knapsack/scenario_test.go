package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/ddbb/bnb"
	"github.com/corvidlabs/ddbb/contracts"
	"github.com/corvidlabs/ddbb/frontier"
	"github.com/corvidlabs/ddbb/knapsack"
)

func solve(t *testing.T, inst knapsack.Instance, width, nbThreads int) *bnb.Engine[int] {
	t.Helper()

	problem := knapsack.NewProblem(inst)
	relax := knapsack.NewRelaxation(inst)
	ranking := knapsack.Ranking{}

	var p contracts.Problem[int] = problem
	var r contracts.Relaxation[int] = relax

	e, err := bnb.NewEngine(bnb.Config[int]{
		NbThreads:      nbThreads,
		Problem:        p,
		Relaxation:     r,
		VarHeuristic:   knapsack.AscendingVariableHeuristic{},
		Ranking:        ranking,
		WidthHeuristic: contracts.FixedWidth[int](width),
		Frontier:       frontier.NewSimpleFrontier[int](ranking),
	})
	require.NoError(t, err)
	e.Maximize()

	return e
}

func tenItemInstance() knapsack.Instance {
	weights := []int{95, 4, 60, 32, 23, 72, 80, 62, 65, 46}
	values := []int{55, 10, 47, 5, 4, 50, 8, 61, 85, 87}
	items := make([]knapsack.Item, len(weights))
	for i := range weights {
		items[i] = knapsack.Item{Weight: weights[i], Value: values[i]}
	}

	return knapsack.Instance{Capacity: 269, Items: items}
}

func TestScenario_TenItemsWidthTwo(t *testing.T) {
	inst := tenItemInstance()
	e := solve(t, inst, 2, 1)

	v, ok := e.BestValue()
	require.True(t, ok)
	require.Equal(t, 295, v)

	sol, ok := e.BestSolution()
	require.True(t, ok)
	require.Len(t, sol, 10)

	weight, value := 0, 0
	for i, item := range inst.Items {
		if sol[i] == 1 {
			weight += item.Weight
			value += item.Value
		}
	}
	require.LessOrEqual(t, weight, inst.Capacity)
	require.Equal(t, 295, value)
}

func TestScenario_TenItemsAnyThreadCount(t *testing.T) {
	inst := tenItemInstance()

	for _, threads := range []int{1, 2, 4, 8} {
		e := solve(t, inst, 2, threads)
		v, ok := e.BestValue()
		require.True(t, ok)
		require.Equal(t, 295, v, "P5: nbThreads=%d must not change the result", threads)
	}
}

func TestScenario_ZeroCapacity(t *testing.T) {
	inst := knapsack.Instance{
		Capacity: 0,
		Items: []knapsack.Item{
			{Weight: 5, Value: 10},
			{Weight: 7, Value: 20},
		},
	}
	e := solve(t, inst, 10, 1)

	v, ok := e.BestValue()
	require.True(t, ok)
	require.Equal(t, 0, v)
	sol, _ := e.BestSolution()
	for _, val := range sol {
		require.Equal(t, 0, val)
	}
}

func TestScenario_SingleItemTooHeavy(t *testing.T) {
	inst := knapsack.Instance{
		Capacity: 4,
		Items:    []knapsack.Item{{Weight: 5, Value: 7}},
	}
	e := solve(t, inst, 10, 1)

	v, ok := e.BestValue()
	require.True(t, ok)
	require.Equal(t, 0, v)
	sol, _ := e.BestSolution()
	require.Equal(t, 0, sol[0])
}

func TestScenario_TwoItemsBothChosen(t *testing.T) {
	inst := knapsack.Instance{
		Capacity: 2,
		Items: []knapsack.Item{
			{Weight: 1, Value: 1},
			{Weight: 1, Value: 1},
		},
	}
	e := solve(t, inst, 10, 1)

	v, ok := e.BestValue()
	require.True(t, ok)
	require.Equal(t, 2, v)
	sol, _ := e.BestSolution()
	require.Equal(t, 1, sol[0])
	require.Equal(t, 1, sol[1])
}

func TestScenario_WidthInvariance(t *testing.T) {
	inst := tenItemInstance()

	for _, width := range []int{1, 2, 3, 5, 100} {
		e := solve(t, inst, width, 1)
		v, ok := e.BestValue()
		require.True(t, ok)
		require.Equal(t, 295, v, "P4: maxWidth=%d must not change the optimum", width)
	}
}
