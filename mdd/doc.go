// Package mdd compiles a single subproblem into a layered multi-valued
// decision diagram (MDD), one layer at a time, in one of three modes:
//
//   - Exact — never shrinks a layer; every path in the subproblem is
//     represented.
//   - Restricted — drops nodes once a layer exceeds its width budget,
//     yielding a lower bound.
//   - Relaxed — merges nodes once a layer exceeds its width budget,
//     yielding an upper bound, and additionally exposes a last-exact-
//     layer (LEL) cutset with per-node local bounds for the caller to
//     re-enqueue.
//
// A Compiler is meant to be built once per worker and reused across
// many calls to Compile: each call clears and repopulates the same
// internal buffers rather than allocating a fresh graph.
package mdd
