package tree

import (
	"github.com/JosuaKrause/fann/distkit"
	"github.com/JosuaKrause/fann/embedset"
	"github.com/JosuaKrause/fann/obs"
	"github.com/JosuaKrause/fann/paircache"
)

// cluster is one k-medoid partition: a chosen centroid and the full set of
// indices (including the centroid itself) assigned to it.
type cluster struct {
	Centroid int
	Members  []int
}

// centroid picks the 1-medoid of allIxs: the index minimizing the sum of
// distances to every other index in allIxs. Ties keep the first index
// encountered in allIxs, since a candidate only replaces the running best on
// a strict improvement. Each candidate's running sum abandons early (and is
// never compared further) the moment it exceeds the current best, per
// an early-exit abandonment rule. Grounded on kmed.rs::FannTree::centroid.
func centroid(provider *embedset.Provider, cache paircache.Cache, sink obs.Sink, allIxs []int) (int, error) {
	bestIx := -1
	bestDist := distkit.Infinity()
	for _, ix := range allIxs {
		cur := distkit.Zero()
		abandoned := false
		for _, other := range allIxs {
			if other == ix {
				continue
			}
			if bestIx != -1 && bestDist.Less(cur) {
				abandoned = true
				break
			}
			d, err := distWithCache(provider, cache, sink, ix, other)
			if err != nil {
				return 0, err
			}
			cur = cur.Add(d)
		}
		if abandoned {
			continue
		}
		if bestIx == -1 || cur.Less(bestDist) {
			bestIx = ix
			bestDist = cur
		}
	}
	return bestIx, nil
}

const (
	kmedoidBufSize   = 10
	kmedoidMaxRounds = 1000
)

// kmedoidPartition partitions allIxs into k clusters (one singleton cluster
// per index when len(allIxs) <= k) via iterative
// k-medoid refinement: assign every index to its nearest of the current
// centroids, recompute each cluster's 1-medoid, and repeat until the new
// centroid set exactly repeats one already seen in the last kmedoidBufSize
// rounds (a cycle, which k-medoid is prone to since it has no guaranteed
// monotone objective) or kmedoidMaxRounds is exhausted. Grounded on
// kmed.rs::FannTree::kmedoid.
func kmedoidPartition(provider *embedset.Provider, cache paircache.Cache, sink obs.Sink, allIxs []int, k int) ([]cluster, error) {
	if len(allIxs) <= k {
		clusters := make([]cluster, len(allIxs))
		for i, ix := range allIxs {
			clusters[i] = cluster{Centroid: ix, Members: []int{ix}}
		}
		return clusters, nil
	}

	seen := make([][]int, 0, kmedoidBufSize)
	centroids := append([]int(nil), allIxs[:k]...)
	seen = append([][]int{centroids}, seen...)

	rounds := kmedoidMaxRounds
	for {
		assigned, err := assign(provider, cache, sink, allIxs, centroids)
		if err != nil {
			return nil, err
		}

		rounds--
		if rounds <= 0 {
			return assigned, nil
		}

		newCentroids := make([]int, len(assigned))
		for i, c := range assigned {
			nc, err := centroid(provider, cache, sink, c.Members)
			if err != nil {
				return nil, err
			}
			newCentroids[i] = nc
		}

		if containsSlice(seen, newCentroids) {
			return assign(provider, cache, sink, allIxs, newCentroids)
		}

		seen = append([][]int{newCentroids}, seen...)
		if len(seen) > kmedoidBufSize {
			seen = seen[:kmedoidBufSize]
		}
		centroids = newCentroids
	}
}

// assign maps every index in allIxs to the cluster of its nearest centroid,
// including each centroid as the first member of its own cluster.
func assign(provider *embedset.Provider, cache paircache.Cache, sink obs.Sink, allIxs []int, centroids []int) ([]cluster, error) {
	clusters := make([]cluster, len(centroids))
	for i, c := range centroids {
		clusters[i] = cluster{Centroid: c, Members: []int{c}}
	}
	isCentroid := make(map[int]bool, len(centroids))
	for _, c := range centroids {
		isCentroid[c] = true
	}
	for _, ix := range allIxs {
		if isCentroid[ix] {
			continue
		}
		best := -1
		bestDist := distkit.Infinity()
		for i, c := range centroids {
			d, err := distWithCache(provider, cache, sink, ix, c)
			if err != nil {
				return nil, err
			}
			if best == -1 || d.Less(bestDist) {
				best = i
				bestDist = d
			}
		}
		clusters[best].Members = append(clusters[best].Members, ix)
	}
	return clusters, nil
}

func containsSlice(haystack [][]int, needle []int) bool {
	for _, s := range haystack {
		if sameInts(s, needle) {
			return true
		}
	}
	return false
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func removeIndex(ixs []int, index int) []int {
	out := ixs[:0:0]
	for _, ix := range ixs {
		if ix != index {
			out = append(out, ix)
		}
	}
	return out
}

// buildLevel recursively builds the subtree rooted at rootIx over curAllIxs
// (which excludes rootIx). The branching factor at this level, numK, is
// maxNodeSize whenever maxNodeSize^2 exceeds len(curAllIxs), otherwise
// sqrt(len(curAllIxs)) clamped to at least 1, so large sets near the root
// fan out widely and small sets deeper down split into maxNodeSize
// clusters. Grounded on kmed.rs::FannTree::build_level.
func buildLevel(provider *embedset.Provider, cache paircache.Cache, sink obs.Sink, rootIx int, curAllIxs []int, maxNodeSize int) (*Node, error) {
	node := newLeaf(rootIx)

	numK := maxNodeSize
	if maxNodeSize*maxNodeSize <= len(curAllIxs) {
		numK = isqrt(len(curAllIxs))
		if numK < 1 {
			numK = 1
		}
	}

	if numK == 1 || len(curAllIxs) <= numK {
		for _, ix := range curAllIxs {
			cnode := newLeaf(ix)
			cnode.computeRadius()
			if err := node.addChild(provider, cache, sink, cnode); err != nil {
				return nil, err
			}
		}
	} else {
		clusters, err := kmedoidPartition(provider, cache, sink, curAllIxs, numK)
		if err != nil {
			return nil, err
		}
		for _, c := range clusters {
			members := removeIndex(c.Members, c.Centroid)
			childNode, err := buildLevel(provider, cache, sink, c.Centroid, members, maxNodeSize)
			if err != nil {
				return nil, err
			}
			if err := node.addChild(provider, cache, sink, childNode); err != nil {
				return nil, err
			}
		}
	}

	node.computeRadius()
	return node, nil
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	for {
		y := (x + n/x) / 2
		if y >= x {
			return x
		}
		x = y
	}
}

// Build constructs a complete metric tree over provider's full range,
// consulting cache for pair distances and reporting activity to sink.
// Grounded on kmed.rs::FannTree::build.
func Build(provider *embedset.Provider, cache paircache.Cache, sink obs.Sink, opts ...Option) (*Tree, error) {
	if provider.Len() == 0 {
		return nil, ErrEmptyProvider
	}

	params := defaultParams(provider.Len())
	for _, opt := range opts {
		opt(&params)
	}
	if params.MaxNodeSize <= 0 {
		return nil, ErrInvalidParameter
	}

	start, end := provider.Range()
	allIxs := make([]int, 0, end-start)
	for ix := start; ix < end; ix++ {
		allIxs = append(allIxs, ix)
	}

	rootIx, err := centroid(provider, cache, sink, allIxs)
	if err != nil {
		return nil, err
	}
	rest := removeIndex(allIxs, rootIx)

	root, err := buildLevel(provider, cache, sink, rootIx, rest, params.MaxNodeSize)
	if err != nil {
		return nil, err
	}

	return &Tree{
		Root:         root,
		Fingerprint:  provider.Fingerprint(),
		DistanceName: provider.Kernel().Name(),
	}, nil
}
