// Package ddtypes defines the value types shared by the mdd and bnb
// packages: Decision, SubProblem, the compilation Mode, and the
// saturated-arithmetic helpers used to keep longest-path values inside
// [MinInt, MaxInt] without ever panicking on overflow.
//
// Nothing here is mutable after construction. State (the client's own
// value type) is treated as opaque and is only ever compared and
// hashed via Go's built-in comparable constraint — clients that can
// satisfy comparable get value equality and map-key hashing for free.
package ddtypes
