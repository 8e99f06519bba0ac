// Package frontier provides the priority queue of open subproblems
// that the branch-and-bound engine drains: SimpleFrontier, a plain
// binary heap, and NoDuplicateFrontier, which additionally coalesces
// entries sharing a state.
//
// Both variants pop the subproblem with the greatest upper bound
// first, breaking ties with the client's StateRanking (larger ranks
// first). Both are built on container/heap, the same way a scored
// priority queue is built throughout the wider Go ecosystem — nothing
// about this ordering needs a bespoke data structure.
package frontier
