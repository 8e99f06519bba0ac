// Package contracts declares the five client-supplied capability sets
// the mdd compiler and the bnb engine are polymorphic over: Problem,
// Relaxation, StateRanking, VariableHeuristic, and WidthHeuristic.
//
// None of these are implemented here — this package only fixes the
// shape a client must satisfy. See the knapsack package for a
// reference implementation, and FixedWidth / UnboundedRelaxation
// below for small reusable defaults.
package contracts
