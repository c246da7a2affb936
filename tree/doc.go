// Package tree implements a hierarchical metric tree (ball-tree-style): a
// node type carrying a centroid, radius, and ordered children; a builder
// that partitions a corpus via recursive k-medoid clustering into a
// balanced tree; and a branch-and-bound nearest-neighbor search over that
// tree using the reverse triangle inequality to prune.
//
// Grounded on the original engine's fann/kmed.rs (node, centroid, k-medoid,
// recursive build) and fann/algo.rs (the priority-queue search shape), and
// structurally on the teacher's tsp/bb.go (a dedicated engine struct holding
// explicit search state) and dijkstra/dijkstra.go (a container/heap-backed
// lazy min-heap with a sentinel-error preflight).
package tree
