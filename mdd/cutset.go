package mdd

import "github.com/corvidlabs/ddbb/ddtypes"

// BestValue returns the objective value of the best terminal node
// found, if any.
func (c *Compiler[T]) BestValue() (int, bool) {
	if c.best == nil {
		return 0, false
	}

	return c.best.value, true
}

// BestSolution returns the full decision path from the original root
// (pathToRoot ++ the best path through this MDD) to the best terminal
// node found, if any.
func (c *Compiler[T]) BestSolution() ([]ddtypes.Decision, bool) {
	if c.best == nil {
		return nil, false
	}
	suffix := pathFromRoot(c.best)
	full := make([]ddtypes.Decision, 0, len(c.pathToRoot)+len(suffix))
	full = append(full, c.pathToRoot...)
	full = append(full, suffix...)

	return full, true
}

// IsExact reports whether this compilation never needed to shrink a
// layer, i.e. whether it represents every path in the subproblem.
func (c *Compiler[T]) IsExact() bool {
	return c.exact
}

// ExactCutset converts the last-exact-layer into SubProblems the
// caller can re-enqueue. Only meaningful after a Relaxed compilation;
// it is empty whenever IsExact is true.
func (c *Compiler[T]) ExactCutset() []ddtypes.SubProblem[T] {
	if len(c.lel) == 0 {
		return nil
	}

	out := make([]ddtypes.SubProblem[T], 0, len(c.lel))
	for _, ns := range c.lel {
		suffix := pathFromRoot(ns.node)
		path := make([]ddtypes.Decision, 0, len(c.pathToRoot)+len(suffix))
		path = append(path, c.pathToRoot...)
		path = append(path, suffix...)

		localBound := ddtypes.MinInt
		if ns.node.hasSuffix {
			localBound = ddtypes.SaturatedAdd(ns.node.value, ns.node.suffix)
		}
		ub := ns.ub
		if localBound < ub {
			ub = localBound
		}

		out = append(out, ddtypes.SubProblem[T]{
			State: ns.state,
			Value: ns.node.value,
			UB:    ub,
			Path:  path,
		})
	}

	return out
}

// propagateLocalBounds runs the relaxed-only local-bound pass: every
// terminal node starts at suffix=0, and each edge propagates
// max(child.suffix + edge.weight) up to its origin. Propagation stops
// once the layer immediately below the LEL has been processed, since
// only LEL nodes' suffixes are ever read.
func (c *Compiler[T]) propagateLocalBounds() {
	if len(c.layerHistory) == 0 {
		return
	}

	terminal := c.layerHistory[len(c.layerHistory)-1]
	for _, ns := range terminal {
		ns.node.suffix = 0
		ns.node.hasSuffix = true
	}

	for i := len(c.layerHistory) - 1; i >= 1; i-- {
		layer := c.layerHistory[i]
		for _, ns := range layer {
			for _, e := range ns.node.incoming {
				cand := ddtypes.SaturatedAdd(ns.node.suffix, e.weight)
				if !e.origin.hasSuffix || cand > e.origin.suffix {
					e.origin.suffix = cand
					e.origin.hasSuffix = true
				}
			}
		}
		if i-1 == c.lelIndex {
			break
		}
	}
}
