package forest

import (
	"sort"

	"github.com/JosuaKrause/fann/embedset"
	"github.com/JosuaKrause/fann/internal/brute"
	"github.com/JosuaKrause/fann/obs"
	"github.com/JosuaKrause/fann/paircache"
	"github.com/JosuaKrause/fann/tree"
)

// slab is one slab tree plus its dirty flag, mirroring the original
// engine's Buildable: a tree adopted from disk is clean, a tree newly built
// is dirty, and only dirty trees are written back on save.
type slab struct {
	provider *embedset.Provider
	tr       *tree.Tree
	dirty    bool
}

func (s *slab) isReady() bool {
	return s.tr != nil
}

// Forest is a corpus partitioned into contiguous slab trees plus a residual
// tail range.
type Forest struct {
	root     *embedset.Provider
	slabs    []*slab
	residual *embedset.Provider
	params   Params
}

// New partitions root into contiguous slabs of size maxTree (the final slab
// may be smaller), leaving any remainder shorter than minTree as an
// unindexed residual range. No tree is built yet; call BuildAll (or Load) to
// populate slab trees. Grounded on forest.rs::Forest::create.
func New(root *embedset.Provider, minTree, maxTree int, opts ...Option) (*Forest, error) {
	if minTree <= 0 || maxTree <= 0 || minTree > maxTree {
		return nil, ErrInvalidRange
	}

	params := defaultParams()
	for _, opt := range opts {
		opt(&params)
	}

	start, end := root.Range()
	var slabs []*slab
	cur := start
	for cur+minTree <= end {
		size := end - cur
		if size > maxTree {
			size = maxTree
		}
		p, err := root.Subrange(cur, cur+size)
		if err != nil {
			return nil, err
		}
		slabs = append(slabs, &slab{provider: p})
		cur += size
	}
	residual, err := root.Subrange(cur, end)
	if err != nil {
		return nil, err
	}

	return &Forest{root: root, slabs: slabs, residual: residual, params: params}, nil
}

// NumSlabs returns the number of slab trees in f.
func (f *Forest) NumSlabs() int {
	return len(f.slabs)
}

// ResidualLen returns the number of corpus entries in the unindexed
// residual range.
func (f *Forest) ResidualLen() int {
	return f.residual.Len()
}

// BuildAll builds a tree for every slab whose tree has not yet been built
// (or adopted from disk), marking each newly built tree dirty. Already-built
// slabs are left untouched, so BuildAll is safe to call again after Load.
func (f *Forest) BuildAll(cache paircache.Cache, sink obs.Sink, treeOpts ...tree.Option) error {
	for _, s := range f.slabs {
		if s.isReady() {
			continue
		}
		t, err := tree.Build(s.provider, cache, sink, treeOpts...)
		if err != nil {
			return err
		}
		s.tr = t
		s.dirty = true
	}
	return nil
}

// Result is one forest-level search hit.
type Result struct {
	Index int
	Dist  float64
}

// Search issues a k-nearest-neighbor query against every built slab tree,
// optionally merges an exhaustive scan of the residual range (per
// Params.ResidualMerge), then concatenates, sorts ascending by finalized
// distance, and truncates to k. Grounded on forest.rs::Forest::get_closest.
func (f *Forest) Search(q []float64, k int, sink obs.Sink) ([]Result, error) {
	if k < 0 {
		return nil, ErrInvalidParameter
	}
	if k == 0 {
		return nil, nil
	}

	var all []Result
	for _, s := range f.slabs {
		if !s.isReady() {
			continue
		}
		res, err := tree.Search(s.tr, s.provider, q, k, sink)
		if err != nil {
			return nil, err
		}
		for _, r := range res {
			all = append(all, Result{Index: r.Index, Dist: r.Dist})
		}
	}

	if f.params.ResidualMerge && f.residual.Len() > 0 {
		res, err := brute.Search(f.residual, q, k)
		if err != nil {
			return nil, err
		}
		for _, r := range res {
			all = append(all, Result{Index: r.Index, Dist: r.Dist})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Dist < all[j].Dist
	})
	if k < len(all) {
		all = all[:k]
	}
	return all, nil
}
