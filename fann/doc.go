// Package fann is the root facade over the approximate nearest-neighbor
// index: embed a corpus with embedset, build a single tree (tree) or a
// slab forest (forest) over it, and query either for the k nearest
// neighbors of a vector.
//
// This package does not implement any algorithm itself — it only wires the
// subpackages' entry points together, the way the teacher's root doc.go
// documents the module's packages without introducing new logic of its
// own.
package fann
