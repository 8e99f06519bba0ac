package frontier

import (
	"container/heap"

	"github.com/corvidlabs/ddbb/contracts"
	"github.com/corvidlabs/ddbb/ddtypes"
)

// simpleHeap adapts a plain slice of subproblems to container/heap,
// ordered by (ub desc, ranking desc).
type simpleHeap[T comparable] struct {
	items   []ddtypes.SubProblem[T]
	ranking contracts.StateRanking[T]
}

func (h simpleHeap[T]) Len() int { return len(h.items) }

func (h simpleHeap[T]) Less(i, j int) bool {
	return more(h.items[i], h.items[j], h.ranking)
}

func (h simpleHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *simpleHeap[T]) Push(x any) {
	h.items = append(h.items, x.(ddtypes.SubProblem[T]))
}

func (h *simpleHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}

// SimpleFrontier is a plain binary-heap frontier: no deduplication, no
// coalescing. Every pushed subproblem occupies its own slot.
type SimpleFrontier[T comparable] struct {
	h simpleHeap[T]
}

// NewSimpleFrontier builds a SimpleFrontier ordered by ub desc, ties
// broken by ranking desc.
func NewSimpleFrontier[T comparable](ranking contracts.StateRanking[T]) *SimpleFrontier[T] {
	return &SimpleFrontier[T]{h: simpleHeap[T]{ranking: ranking}}
}

// Push implements Frontier.
func (f *SimpleFrontier[T]) Push(sub ddtypes.SubProblem[T]) {
	heap.Push(&f.h, sub)
}

// Pop implements Frontier.
func (f *SimpleFrontier[T]) Pop() (ddtypes.SubProblem[T], bool) {
	if f.h.Len() == 0 {
		return ddtypes.SubProblem[T]{}, false
	}

	return heap.Pop(&f.h).(ddtypes.SubProblem[T]), true
}

// Clear implements Frontier.
func (f *SimpleFrontier[T]) Clear() {
	f.h.items = nil
}

// Size implements Frontier.
func (f *SimpleFrontier[T]) Size() int {
	return f.h.Len()
}
