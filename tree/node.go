package tree

import (
	"sort"

	"github.com/JosuaKrause/fann/distkit"
	"github.com/JosuaKrause/fann/embedset"
	"github.com/JosuaKrause/fann/obs"
	"github.com/JosuaKrause/fann/paircache"
)

// Child is one edge in the tree: a subtree plus the distance from the
// parent's centroid to the child's centroid, precomputed at build time and
// never recomputed ("child-center exactness").
type Child struct {
	Node       *Node
	CenterDist distkit.Dist
}

// Node is one node of the metric tree: a centroid corpus index, a radius
// bounding every descendant, and an ordered list of children. A leaf has no
// children and radius zero.
type Node struct {
	CentroidIndex int
	Radius        distkit.Dist
	Children      []Child
}

// newLeaf constructs a childless node for the given centroid index.
func newLeaf(centroidIndex int) *Node {
	return &Node{CentroidIndex: centroidIndex, Radius: distkit.Zero()}
}

// addChild computes the center distance from n to child (consulting the pair
// cache and observation sink), appends child, and re-sorts n's children by
// decreasing center distance with a stable tie-break on first-seen order.
func (n *Node) addChild(provider *embedset.Provider, cache paircache.Cache, sink obs.Sink, child *Node) error {
	centerDist, err := distWithCache(provider, cache, sink, n.CentroidIndex, child.CentroidIndex)
	if err != nil {
		return err
	}
	n.Children = append(n.Children, Child{Node: child, CenterDist: centerDist})
	sort.SliceStable(n.Children, func(i, j int) bool {
		return n.Children[j].CenterDist.Less(n.Children[i].CenterDist)
	})
	return nil
}

// computeRadius sets n.Radius to the maximum, over every child, of
// child.CenterDist + child.Node.Radius, or zero if n has no children.
func (n *Node) computeRadius() {
	radius := distkit.Zero()
	for _, c := range n.Children {
		upper := c.CenterDist.Add(c.Node.Radius)
		if radius.Less(upper) {
			radius = upper
		}
	}
	n.Radius = radius
}

// DistanceToQuery computes compare(centroid, q), invoking the observation
// sink's distance hook exactly once for the centroid index.
func (n *Node) DistanceToQuery(provider *embedset.Provider, q []float64, sink obs.Sink) (distkit.Dist, error) {
	return distanceToQuery(provider, n.CentroidIndex, q, sink)
}

// LowerBound returns saturating_sub(distToCentroid, n.Radius), the pruning
// key used to order the branch-and-bound search queue.
func (n *Node) LowerBound(distToCentroid distkit.Dist) distkit.Dist {
	return distToCentroid.SaturatingSub(n.Radius)
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func distanceToQuery(provider *embedset.Provider, index int, q []float64, sink obs.Sink) (distkit.Dist, error) {
	sink.DistanceEvaluated(index)
	return provider.CompareTo(index, q)
}
