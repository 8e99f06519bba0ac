package bnb

import (
	"github.com/sirupsen/logrus"

	"github.com/corvidlabs/ddbb/ddtypes"
	"github.com/corvidlabs/ddbb/mdd"
)

// workerLoop drives one worker goroutine: repeatedly acquire work
// under the monitor, then compile it lock-free.
func (e *Engine[T]) workerLoop(threadID int) {
	compiler := mdd.NewCompiler[T](mdd.WithLogger[T](e.logger))

	for {
		s, status := e.acquireWork(threadID)
		switch status {
		case statusComplete:
			return
		case statusStarvation:
			continue
		case statusWork:
			e.process(threadID, compiler, s)
		}
	}
}

// acquireWork implements the workload-acquisition protocol as one
// atomic decision under the lock.
func (e *Engine[T]) acquireWork(threadID int) (ddtypes.SubProblem[T], workStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ongoing == 0 && e.cfg.Frontier.Size() == 0 {
		e.bestUB = e.bestLB
		e.cond.Broadcast()

		return ddtypes.SubProblem[T]{}, statusComplete
	}

	if e.cfg.Frontier.Size() == 0 {
		e.cond.Wait()

		return ddtypes.SubProblem[T]{}, statusStarvation
	}

	s, _ := e.cfg.Frontier.Pop()
	if s.UB <= e.bestLB {
		// The most promising subproblem left cannot beat the current
		// bound: nothing in the frontier can either. Wait only while
		// another worker is compiling; with none, nothing can refill the
		// frontier and the next attempt reports completion.
		e.cfg.Frontier.Clear()
		if e.ongoing > 0 {
			e.cond.Wait()
		}

		return ddtypes.SubProblem[T]{}, statusStarvation
	}

	e.ongoing++
	e.explored++
	e.upperBounds[threadID] = s.UB

	return s, statusWork
}

// process compiles one subproblem: a restricted MDD first (a cheap
// lower bound, often exact), then, only if needed, a relaxed MDD whose
// cutset re-feeds the frontier.
func (e *Engine[T]) process(threadID int, compiler *mdd.Compiler[T], s ddtypes.SubProblem[T]) {
	defer e.releaseWork(threadID)

	if s.UB <= e.readLB() {
		return
	}

	maxWidth := e.cfg.WidthHeuristic.MaximumWidth(s.State)

	input := mdd.CompilationInput[T]{
		Problem:      e.cfg.Problem,
		Relaxation:   e.cfg.Relaxation,
		VarHeuristic: e.cfg.VarHeuristic,
		Ranking:      e.cfg.Ranking,
		Residual:     s,
		MaxWidth:     maxWidth,
	}

	input.Mode = ddtypes.Restricted
	input.BestLB = e.readLB()
	if err := compiler.Compile(input); err != nil {
		e.logger.WithError(err).Error("bnb: restricted compilation failed")

		return
	}
	if v, ok := compiler.BestValue(); ok {
		e.tryUpdateBest(v, compiler)
	}
	if compiler.IsExact() {
		return
	}

	input.Mode = ddtypes.Relaxed
	input.BestLB = e.readLB()
	if err := compiler.Compile(input); err != nil {
		e.logger.WithError(err).Error("bnb: relaxed compilation failed")

		return
	}
	if v, ok := compiler.BestValue(); ok && compiler.IsExact() {
		e.tryUpdateBest(v, compiler)

		return
	}

	e.pushCutset(compiler)
}

// readLB reads the current global lower bound under the lock.
func (e *Engine[T]) readLB() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.bestLB
}

// tryUpdateBest installs v as the new global lower bound if it
// improves on the current one, recording the witness solution.
func (e *Engine[T]) tryUpdateBest(v int, compiler *mdd.Compiler[T]) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v <= e.bestLB {
		return
	}

	e.bestLB = v
	if sol, ok := compiler.BestSolution(); ok {
		e.bestSol = sol
		e.haveSol = true
	}
	e.logger.WithFields(logrus.Fields{
		"bestLB":   v,
		"explored": e.explored,
	}).Info("bnb: improved lower bound")
	e.cond.Broadcast()
}

// pushCutset re-enqueues every cutset subproblem that can still beat
// the current lower bound.
func (e *Engine[T]) pushCutset(compiler *mdd.Compiler[T]) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, sub := range compiler.ExactCutset() {
		if sub.UB > e.bestLB {
			e.cfg.Frontier.Push(sub)
		}
	}
	e.cond.Broadcast()
}

// releaseWork decrements the ongoing counter and wakes any waiters.
func (e *Engine[T]) releaseWork(threadID int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ongoing--
	e.upperBounds[threadID] = ddtypes.MaxInt
	e.cond.Broadcast()
}
