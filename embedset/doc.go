// Package embedset provides the embedding provider: an indexed, sliceable
// view onto a corpus of fixed-dimension float64 embeddings, bound to a
// distkit.Kernel.
//
// A Provider never renumbers: a sub-range constructed over [s, e) still
// reports index s for its first row, because the forest package relies on
// indices staying globally unique across every slab it merges results from.
//
// Storage is adapted from the teacher's matrix.Dense: a single flat,
// row-major []float64 slice rather than a slice-of-slices, for the same
// cache-friendliness reason Dense was built that way.
package embedset
