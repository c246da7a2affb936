// Package distkit provides the orderable distance value and the distance-kernel
// contract the rest of the engine is built on.
//
// A kernel separates two concerns: Compare produces a monotone, non-negative
// value suitable for ordering and pruning (the square of a Euclidean distance,
// say), while Finalize maps that value to the user-visible distance only once,
// at the very end of a search. Deferring the expensive transcendental step
// (sqrt, exp, ...) until the last moment is what keeps branch-and-bound cheap:
// every comparison along the way only ever touches the cheap Compare output.
//
// distkit ships two reference kernels, L2 and Dot. Neither is meant to be the
// last word on vector distance — callers needing a different metric implement
// Kernel themselves.
package distkit
