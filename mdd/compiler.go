package mdd

import (
	"iter"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/corvidlabs/ddbb/contracts"
	"github.com/corvidlabs/ddbb/ddtypes"
)

// CompilationInput bundles everything one Compile call needs: the mode,
// the client contracts, the residual subproblem to root the MDD at,
// the width budget, and the live lower bound used to prune dominated
// nodes during branching.
type CompilationInput[T comparable] struct {
	Mode         ddtypes.Mode
	Problem      contracts.Problem[T]
	Relaxation   contracts.Relaxation[T]
	VarHeuristic contracts.VariableHeuristic[T]
	Ranking      contracts.StateRanking[T]
	Residual     ddtypes.SubProblem[T]
	MaxWidth     int
	BestLB       int
}

// Compiler builds one MDD per Compile call, reusing its internal
// buffers across calls. It is not safe for concurrent use; the bnb
// engine gives each worker its own Compiler.
type Compiler[T comparable] struct {
	logger *logrus.Logger

	input CompilationInput[T]

	prevLayer      []nodeSubProblem[T] // previous iteration's finalized currentLayer
	prevLayerState map[*node]T         // origin node -> state, for relaxEdge lookups
	currentLayer   []nodeSubProblem[T]
	nextLayer      *orderedStateMap[T]
	lel            []nodeSubProblem[T]
	lelIndex       int // index into layerHistory of the LEL itself; -1 if unset
	layerHistory   [][]nodeSubProblem[T]
	pathToRoot     []ddtypes.Decision
	depth          int
	best           *node
	exact          bool
}

// NewCompiler builds a Compiler ready for repeated Compile calls.
func NewCompiler[T comparable](opts ...Option[T]) *Compiler[T] {
	c := &Compiler[T]{
		logger:         logrus.StandardLogger(),
		prevLayerState: make(map[*node]T),
		nextLayer:      newOrderedStateMap[T](),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// clear resets all buffers for a fresh compilation, reusing storage
// where possible.
func (c *Compiler[T]) clear() {
	c.prevLayer = c.prevLayer[:0]
	clear(c.prevLayerState)
	c.currentLayer = c.currentLayer[:0]
	c.nextLayer.reset()
	c.lel = c.lel[:0]
	c.lelIndex = -1
	c.layerHistory = c.layerHistory[:0]
	c.pathToRoot = nil
	c.depth = 0
	c.best = nil
	c.exact = true
}

// Compile builds the MDD for input, one layer at a time. It returns
// an error only for a malformed input; an infeasible subproblem is
// reported by BestValue returning false, not by an error.
func (c *Compiler[T]) Compile(input CompilationInput[T]) error {
	if input.MaxWidth < 1 {
		return ErrInvalidWidth
	}

	c.clear()
	c.input = input
	c.pathToRoot = input.Residual.Path

	root := &node{value: input.Residual.Value}
	c.nextLayer.set(input.Residual.State, root)

	unassigned := input.Residual.UnassignedVars(input.Problem.NbVars())

	for len(unassigned) > 0 {
		v, ok := input.VarHeuristic.NextVariable(unassigned, c.nextLayer.seq())
		if !ok {
			c.logger.WithField("depth", c.depth).Debug("mdd: no variable choice, aborting compilation")
			c.clear()

			return nil
		}

		c.rotateLayers(unassigned)

		if len(c.currentLayer) == 0 {
			c.logger.WithField("depth", c.depth).Debug("mdd: empty layer, subproblem infeasible")
			c.clear()

			return nil
		}

		delete(unassigned, v)

		c.controlWidth()

		if input.Mode == ddtypes.Relaxed {
			c.layerHistory = append(c.layerHistory, append([]nodeSubProblem[T]{}, c.currentLayer...))
		}

		c.branch(v)

		c.depth++
	}

	c.best = c.pickBest()
	if input.Mode == ddtypes.Relaxed {
		c.layerHistory = append(c.layerHistory, c.terminalLayer())
		c.propagateLocalBounds()
	}

	return nil
}

// rotateLayers snapshots currentLayer into prevLayer, then rebuilds
// currentLayer from nextLayer with each node's rough upper bound.
func (c *Compiler[T]) rotateLayers(unassigned map[int]struct{}) {
	c.prevLayer = append(c.prevLayer[:0], c.currentLayer...)
	clear(c.prevLayerState)
	for _, ns := range c.prevLayer {
		c.prevLayerState[ns.node] = ns.state
	}

	c.currentLayer = c.currentLayer[:0]
	for state := range c.nextLayer.seq() {
		nd, _ := c.nextLayer.get(state)
		rub := ddtypes.SaturatedAdd(nd.value, c.input.Relaxation.FastUpperBound(state, unassigned))
		c.currentLayer = append(c.currentLayer, nodeSubProblem[T]{state: state, ub: rub, node: nd})
	}
	c.nextLayer.reset()
}

// terminalLayer converts the final nextLayer (built by the last
// branching step) into a nodeSubProblem slice for layerHistory. ub is
// irrelevant here; only state/node are used by local-bound propagation.
func (c *Compiler[T]) terminalLayer() []nodeSubProblem[T] {
	layer := make([]nodeSubProblem[T], 0, c.nextLayer.len())
	for state := range c.nextLayer.seq() {
		nd, _ := c.nextLayer.get(state)
		layer = append(layer, nodeSubProblem[T]{state: state, node: nd})
	}

	return layer
}

// controlWidth applies restriction or relaxation once currentLayer
// exceeds maxWidth. Width control never fires before depth 2, so the
// last exact layer is never the root.
func (c *Compiler[T]) controlWidth() {
	if c.depth < 2 || len(c.currentLayer) <= c.input.MaxWidth {
		return
	}

	switch c.input.Mode {
	case ddtypes.Exact:
		return
	case ddtypes.Restricted:
		c.exact = false
		c.recordLEL()
		sortDescending(c.currentLayer, c.input.Ranking)
		c.currentLayer = c.currentLayer[:c.input.MaxWidth]
	case ddtypes.Relaxed:
		c.exact = false
		c.recordLEL()
		c.mergeLayer()
	}
}

// recordLEL captures prevLayer as the last exact layer, the first time
// a layer needs shrinking, and remembers where in layerHistory it sits
// (Relaxed mode only, for propagateLocalBounds's stopping condition).
func (c *Compiler[T]) recordLEL() {
	if len(c.lel) != 0 {
		return
	}
	c.lel = append(c.lel[:0:0], c.prevLayer...)
	if c.input.Mode == ddtypes.Relaxed {
		c.lelIndex = len(c.layerHistory) - 1
	}
}

// mergeLayer implements the relaxed width-control merge: keep the
// maxWidth-1 most promising nodes, fold the rest into one merged node
// via the client's Relaxation.
func (c *Compiler[T]) mergeLayer() {
	sortDescending(c.currentLayer, c.input.Ranking)

	keepCount := c.input.MaxWidth - 1
	keep := c.currentLayer[:keepCount]
	merge := c.currentLayer[keepCount:]

	mergedState := c.input.Relaxation.MergeStates(subProblemStates(merge))

	var mergedNS *nodeSubProblem[T]
	for i := range keep {
		if keep[i].state == mergedState {
			mergedNS = &keep[i]

			break
		}
	}

	fresh := mergedNS == nil
	var mergedNode *node
	mergedUB := ddtypes.MinInt
	if fresh {
		mergedNode = &node{value: ddtypes.MinInt}
	} else {
		mergedNode = mergedNS.node
		mergedUB = mergedNS.ub
	}

	for _, drop := range merge {
		if drop.ub > mergedUB {
			mergedUB = drop.ub
		}
		for _, e := range drop.node.incoming {
			originState := c.prevLayerState[e.origin]
			rcost := c.input.Relaxation.RelaxEdge(originState, drop.state, mergedState, e.decision, e.weight)
			e.weight = rcost
			mergedNode.incoming = append(mergedNode.incoming, e)
			if v := ddtypes.SaturatedAdd(e.origin.value, rcost); v > mergedNode.value {
				mergedNode.value = v
				mergedNode.bestIncoming = e
			}
		}
	}

	if fresh {
		keep = append(keep, nodeSubProblem[T]{state: mergedState, ub: mergedUB, node: mergedNode})
	} else {
		mergedNS.ub = mergedUB
	}
	c.currentLayer = keep
}

// branch expands every non-dominated node-subproblem in currentLayer
// over variable v's domain, populating nextLayer.
func (c *Compiler[T]) branch(v int) {
	for i := range c.currentLayer {
		ns := &c.currentLayer[i]
		if ns.ub <= c.input.BestLB {
			continue
		}
		for x := range c.input.Problem.Domain(ns.state, v) {
			decision := ddtypes.Decision{Var: v, Val: x}
			child := c.input.Problem.Transition(ns.state, decision)
			cost := c.input.Problem.TransitionCost(ns.state, decision)
			childValue := ddtypes.SaturatedAdd(ns.node.value, cost)

			childNode, exists := c.nextLayer.get(child)
			if !exists {
				childNode = &node{value: childValue}
				c.nextLayer.set(child, childNode)
			}

			e := &edge{origin: ns.node, decision: decision, weight: cost}
			childNode.incoming = append(childNode.incoming, e)
			if childValue >= childNode.value {
				childNode.value = childValue
				childNode.bestIncoming = e
			}
		}
	}
}

// pickBest returns the nextLayer node with maximal value, ties broken
// by first-seen order.
func (c *Compiler[T]) pickBest() *node {
	var best *node
	for state := range c.nextLayer.seq() {
		nd, _ := c.nextLayer.get(state)
		if best == nil || nd.value > best.value {
			best = nd
		}
	}

	return best
}

// subProblemStates adapts a nodeSubProblem slice to the iter.Seq[T]
// shape Relaxation.MergeStates expects.
func subProblemStates[T comparable](layer []nodeSubProblem[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, ns := range layer {
			if !yield(ns.state) {
				return
			}
		}
	}
}

// sortDescending orders a layer most-promising-first: primary key
// node.value descending, secondary key the client ranking descending.
func sortDescending[T comparable](layer []nodeSubProblem[T], ranking contracts.StateRanking[T]) {
	sort.SliceStable(layer, func(i, j int) bool {
		if layer[i].node.value != layer[j].node.value {
			return layer[i].node.value > layer[j].node.value
		}

		return ranking.Compare(layer[i].state, layer[j].state) > 0
	})
}
