package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/ddbb/frontier"
)

func TestNoDuplicateFrontier_CoalescesByState(t *testing.T) {
	f := frontier.NewNoDuplicateFrontier[int](intRanking{})
	f.Push(sub(1, 10))
	f.Push(sub(1, 20)) // same state, better ub: should replace

	require.Equal(t, 1, f.Size())
	got, ok := f.Pop()
	require.True(t, ok)
	require.Equal(t, 20, got.UB, "the more promising of the two colliding entries survives")
}

func TestNoDuplicateFrontier_KeepsBetterOnWorsePush(t *testing.T) {
	f := frontier.NewNoDuplicateFrontier[int](intRanking{})
	f.Push(sub(1, 20))
	f.Push(sub(1, 10)) // worse push must not overwrite the better entry

	require.Equal(t, 1, f.Size())
	got, ok := f.Pop()
	require.True(t, ok)
	require.Equal(t, 20, got.UB)
}

func TestNoDuplicateFrontier_SizeEqualsDistinctStates(t *testing.T) {
	f := frontier.NewNoDuplicateFrontier[int](intRanking{})
	f.Push(sub(1, 10))
	f.Push(sub(2, 15))
	f.Push(sub(3, 5))
	f.Push(sub(2, 25)) // collides with state 2

	require.Equal(t, 3, f.Size())

	got, ok := f.Pop()
	require.True(t, ok)
	require.Equal(t, 2, got.State)
	require.Equal(t, 25, got.UB)

	got, ok = f.Pop()
	require.True(t, ok)
	require.Equal(t, 1, got.State)

	got, ok = f.Pop()
	require.True(t, ok)
	require.Equal(t, 3, got.State)

	require.Equal(t, 0, f.Size())
}

func TestNoDuplicateFrontier_SingleElementPop(t *testing.T) {
	// Exercises the degenerate heap.Pop path: with a single element,
	// the sift-down step is a no-op.
	f := frontier.NewNoDuplicateFrontier[int](intRanking{})
	f.Push(sub(1, 42))
	got, ok := f.Pop()
	require.True(t, ok)
	require.Equal(t, 42, got.UB)
	require.Equal(t, 0, f.Size())
}
