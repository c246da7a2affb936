package tree

import (
	"container/heap"
	"sort"

	"github.com/JosuaKrause/fann/distkit"
	"github.com/JosuaKrause/fann/embedset"
	"github.com/JosuaKrause/fann/obs"
)

// Result is one entry of a search's output: a corpus index and its
// finalized (user-visible) distance from the query.
type Result struct {
	Index int
	Dist  float64
}

// queueEntry is one priority-queue element in the branch-and-bound search.
// lowerBound orders the queue. known reports whether trueDist has already
// been computed for this node (an "inner" push) or is still only an
// estimate (an "outer" push, whose true distance is deferred until pop).
type queueEntry struct {
	node       *Node
	lowerBound distkit.Dist
	known      bool
	trueDist   distkit.Dist
}

type entryHeap []*queueEntry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	return h[i].lowerBound.Less(h[j].lowerBound)
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(*queueEntry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// resultBuffer is the sorted, length-capped result accumulator: a vector of
// (index, Dist) pairs ordered ascending by Dist. Insertion is
// binary-search-then-insert followed by a truncate to k.
type resultBuffer struct {
	k       int
	indices []int
	dists   []distkit.Dist
}

func newResultBuffer(k int) *resultBuffer {
	return &resultBuffer{k: k}
}

func (b *resultBuffer) maxDist() distkit.Dist {
	if len(b.dists) < b.k {
		return distkit.Infinity()
	}
	return b.dists[len(b.dists)-1]
}

func (b *resultBuffer) full() bool {
	return len(b.dists) >= b.k
}

func (b *resultBuffer) insert(index int, d distkit.Dist) {
	pos := sort.Search(len(b.dists), func(i int) bool {
		return !b.dists[i].Less(d)
	})
	b.indices = append(b.indices, 0)
	b.dists = append(b.dists, distkit.Dist{})
	copy(b.indices[pos+1:], b.indices[pos:])
	copy(b.dists[pos+1:], b.dists[pos:])
	b.indices[pos] = index
	b.dists[pos] = d
	if len(b.dists) > b.k {
		b.indices = b.indices[:b.k]
		b.dists = b.dists[:b.k]
	}
}

// Search runs branch-and-bound nearest-neighbor search over t for query q,
// returning up to k results sorted ascending by finalized distance.
// Grounded structurally on the original engine's fann/algo.rs (the
// stream-based priority-queue form) plus the teacher's dijkstra.go
// (a container/heap-backed lazy search loop).
func Search(t *Tree, provider *embedset.Provider, q []float64, k int, sink obs.Sink) ([]Result, error) {
	if k < 0 {
		return nil, ErrInvalidParameter
	}
	if k == 0 {
		return nil, nil
	}
	if t == nil || t.Root == nil {
		return nil, nil
	}

	buf := newResultBuffer(k)

	rootDist, err := t.Root.DistanceToQuery(provider, q, sink)
	if err != nil {
		return nil, err
	}
	pq := &entryHeap{{
		node:       t.Root,
		lowerBound: t.Root.LowerBound(rootDist),
		known:      true,
		trueDist:   rootDist,
	}}
	heap.Init(pq)

	for pq.Len() > 0 {
		entry := heap.Pop(pq).(*queueEntry)
		n := entry.node

		maxDist := buf.maxDist()
		if maxDist.Less(entry.lowerBound) {
			break
		}

		trueDist := entry.trueDist
		if !entry.known {
			trueDist, err = n.DistanceToQuery(provider, q, sink)
			if err != nil {
				return nil, err
			}
		}

		if !buf.full() || trueDist.Less(maxDist) {
			buf.insert(n.CentroidIndex, trueDist)
		}

		isOuter := n.Radius.Less(trueDist)
		sink.Scan(n.CentroidIndex, isOuter)

		cutoff := buf.maxDist()
		if isOuter {
			for _, c := range n.Children {
				estC := trueDist.SaturatingSub(c.CenterDist)
				if cutoff.Less(estC) {
					continue
				}
				heap.Push(pq, &queueEntry{
					node:       c.Node,
					lowerBound: estC,
					known:      false,
				})
			}
		} else {
			for _, c := range n.Children {
				dc, err := c.Node.DistanceToQuery(provider, q, sink)
				if err != nil {
					return nil, err
				}
				lbC := c.Node.LowerBound(dc)
				if cutoff.Less(lbC) {
					continue
				}
				heap.Push(pq, &queueEntry{
					node:       c.Node,
					lowerBound: lbC,
					known:      true,
					trueDist:   dc,
				})
			}
		}
	}

	kernel := provider.Kernel()
	results := make([]Result, len(buf.indices))
	for i, ix := range buf.indices {
		results[i] = Result{Index: ix, Dist: kernel.Finalize(buf.dists[i])}
	}
	return results, nil
}
