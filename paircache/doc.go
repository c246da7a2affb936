// Package paircache provides the build-time pair-distance cache: a
// symmetric, advisory memoization layer the tree builder consults while its
// k-medoid loop repeatedly re-evaluates the same pairs.
//
// The cache contract is deliberately weak: any implementation that always
// misses is a valid Cache, because nothing downstream depends on a hit. LRU
// is provided as the bounded reference implementation (grounded on the
// original engine's lru::LruCache-backed DistanceCache) and NoCache as the
// null object (grounded on the original's NoCache).
package paircache
