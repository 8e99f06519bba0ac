// Package knapsack is a reference Problem/Relaxation/StateRanking
// implementation over the classic 0/1 knapsack: the state is the
// remaining capacity, and each variable's domain is {0, 1} (leave the
// item out, or take it) gated by whether it still fits.
package knapsack
