// Package forest implements slab partitioning and multi-tree query fan-out:
// a corpus too large for one metric tree is split into contiguous,
// independently built slab trees plus a residual tail range searched by
// exhaustive scan, and persisted as a keyed zip blob store.
//
// Grounded on the original engine's forest.rs (the Forest/Buildable trait
// pair). Slab trees are built and queried one after another; there is no
// concurrent fan-out.
package forest
