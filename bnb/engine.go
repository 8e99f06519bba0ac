package bnb

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/corvidlabs/ddbb/ddtypes"
)

// Engine owns the frontier and the global bounds and spawns NbThreads
// workers, each with its own reusable MDD compiler.
type Engine[T comparable] struct {
	cfg    Config[T]
	logger *logrus.Logger

	mu          sync.Mutex
	cond        *sync.Cond
	ongoing     int
	explored    int
	bestLB      int
	bestUB      int
	bestSol     []ddtypes.Decision
	haveSol     bool
	upperBounds []int
}

// NewEngine validates cfg and builds an Engine ready for Maximize.
func NewEngine[T comparable](cfg Config[T]) (*Engine[T], error) {
	if cfg.NbThreads < 1 {
		return nil, ErrInvalidThreads
	}
	if cfg.Frontier == nil {
		return nil, ErrNilFrontier
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	e := &Engine[T]{
		cfg:         cfg,
		logger:      logger,
		bestLB:      ddtypes.MinInt,
		bestUB:      ddtypes.MaxInt,
		upperBounds: make([]int, cfg.NbThreads),
	}
	for i := range e.upperBounds {
		e.upperBounds[i] = ddtypes.MaxInt
	}
	e.cond = sync.NewCond(&e.mu)

	return e, nil
}

// Maximize seeds the frontier with the root subproblem and blocks
// until every worker reports the search complete.
func (e *Engine[T]) Maximize() {
	root := ddtypes.SubProblem[T]{
		State: e.cfg.Problem.InitialState(),
		Value: e.cfg.Problem.InitialValue(),
		UB:    ddtypes.MaxInt,
	}
	e.cfg.Frontier.Push(root)

	var wg sync.WaitGroup
	wg.Add(e.cfg.NbThreads)
	for id := 0; id < e.cfg.NbThreads; id++ {
		go func(threadID int) {
			defer wg.Done()
			e.workerLoop(threadID)
		}(id)
	}
	wg.Wait()
}

// Explored returns the number of subproblems popped and compiled so far.
func (e *Engine[T]) Explored() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.explored
}

// LowerBound returns the current global lower bound.
func (e *Engine[T]) LowerBound() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.bestLB
}

// UpperBound returns the upper bound recorded at termination. Before
// termination this equals ddtypes.MaxInt.
func (e *Engine[T]) UpperBound() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.bestUB
}

// BestValue returns the optimal objective value, if a feasible
// solution was found.
func (e *Engine[T]) BestValue() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.haveSol {
		return 0, false
	}

	return e.bestLB, true
}

// BestSolution returns a complete variable->value assignment, if a
// feasible solution was found.
func (e *Engine[T]) BestSolution() (map[int]int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.haveSol {
		return nil, false
	}

	sol := make(map[int]int, len(e.bestSol))
	for _, d := range e.bestSol {
		sol[d.Var] = d.Val
	}

	return sol, true
}
