package bnb

import (
	"github.com/sirupsen/logrus"

	"github.com/corvidlabs/ddbb/contracts"
	"github.com/corvidlabs/ddbb/frontier"
)

// Config is the shared, read-only configuration an Engine is built
// from. Every field is immutable once NewEngine returns.
type Config[T comparable] struct {
	// NbThreads is the number of worker goroutines to run, >= 1.
	NbThreads int

	Problem        contracts.Problem[T]
	Relaxation     contracts.Relaxation[T]
	VarHeuristic   contracts.VariableHeuristic[T]
	Ranking        contracts.StateRanking[T]
	WidthHeuristic contracts.WidthHeuristic[T]

	// Frontier is the priority queue of open subproblems, shared by
	// every worker. Must not be nil.
	Frontier frontier.Frontier[T]

	// Logger receives structured progress lines. Defaults to
	// logrus.StandardLogger() when nil.
	Logger *logrus.Logger
}

// workStatus is the outcome of one workload-acquisition attempt.
type workStatus int

const (
	statusWork workStatus = iota
	statusStarvation
	statusComplete
)
