package mdd

import "github.com/corvidlabs/ddbb/ddtypes"

// node is a single MDD vertex. value is the longest-path objective
// into this node from the subproblem root; suffix is the longest path
// from this node to any terminal, populated only during relaxed
// compilation for local-bound propagation.
type node struct {
	value        int
	suffix       int
	hasSuffix    bool
	bestIncoming *edge
	incoming     []*edge
}

// edge is a directed arc from origin, labeled with the decision and
// weight (transition cost, possibly relaxed) that produced it.
type edge struct {
	origin   *node
	decision ddtypes.Decision
	weight   int
}

// nodeSubProblem associates a client state with the node reached while
// building one layer transition. It is the layer's working unit during
// width control and branching, and is what survives into the LEL.
type nodeSubProblem[T comparable] struct {
	state T
	ub    int
	node  *node
}

// pathFromRoot walks n's bestIncoming chain back to the compilation
// root, returning the decisions in root-to-n order.
func pathFromRoot(n *node) []ddtypes.Decision {
	var rev []ddtypes.Decision
	for cur := n; cur.bestIncoming != nil; cur = cur.bestIncoming.origin {
		rev = append(rev, cur.bestIncoming.decision)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
