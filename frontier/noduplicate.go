package frontier

import (
	"container/heap"

	"github.com/corvidlabs/ddbb/contracts"
	"github.com/corvidlabs/ddbb/ddtypes"
)

// nodupHeap is the same ordering as simpleHeap, plus a state->slot
// index kept in sync on every Swap so a colliding push can be applied
// in place via heap.Fix instead of a linear scan.
type nodupHeap[T comparable] struct {
	items   []ddtypes.SubProblem[T]
	index   map[T]int
	ranking contracts.StateRanking[T]
}

func (h nodupHeap[T]) Len() int { return len(h.items) }

func (h nodupHeap[T]) Less(i, j int) bool {
	return more(h.items[i], h.items[j], h.ranking)
}

func (h nodupHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].State] = i
	h.index[h.items[j].State] = j
}

func (h *nodupHeap[T]) Push(x any) {
	sub := x.(ddtypes.SubProblem[T])
	h.index[sub.State] = len(h.items)
	h.items = append(h.items, sub)
}

func (h *nodupHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	delete(h.index, item.State)

	return item
}

// NoDuplicateFrontier is a heap frontier that coalesces entries by
// state: pushing a subproblem whose state already has an entry keeps
// only the more promising of the two, re-bubbling it into place.
//
// Client precondition: any two subproblems with identical root states
// must be behaviorally equivalent for the solver. Clients whose paths
// carry information beyond the state (e.g. per-path side constraints)
// must use SimpleFrontier instead.
type NoDuplicateFrontier[T comparable] struct {
	h nodupHeap[T]
}

// NewNoDuplicateFrontier builds a NoDuplicateFrontier ordered by ub
// desc, ties broken by ranking desc.
func NewNoDuplicateFrontier[T comparable](ranking contracts.StateRanking[T]) *NoDuplicateFrontier[T] {
	return &NoDuplicateFrontier[T]{
		h: nodupHeap[T]{index: make(map[T]int), ranking: ranking},
	}
}

// Push implements Frontier. If sub.State already has an entry, the
// entry becomes whichever of the two is more promising under the
// frontier's total order; otherwise sub is inserted fresh.
func (f *NoDuplicateFrontier[T]) Push(sub ddtypes.SubProblem[T]) {
	if idx, ok := f.h.index[sub.State]; ok {
		existing := f.h.items[idx]
		if more(sub, existing, f.h.ranking) {
			f.h.items[idx] = sub
			heap.Fix(&f.h, idx)
		}

		return
	}
	heap.Push(&f.h, sub)
}

// Pop implements Frontier.
func (f *NoDuplicateFrontier[T]) Pop() (ddtypes.SubProblem[T], bool) {
	if f.h.Len() == 0 {
		return ddtypes.SubProblem[T]{}, false
	}

	return heap.Pop(&f.h).(ddtypes.SubProblem[T]), true
}

// Clear implements Frontier.
func (f *NoDuplicateFrontier[T]) Clear() {
	f.h.items = nil
	f.h.index = make(map[T]int)
}

// Size implements Frontier.
func (f *NoDuplicateFrontier[T]) Size() int {
	return f.h.Len()
}
