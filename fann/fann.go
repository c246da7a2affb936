package fann

import (
	"io"

	"github.com/JosuaKrause/fann/embedset"
	"github.com/JosuaKrause/fann/forest"
	"github.com/JosuaKrause/fann/obs"
	"github.com/JosuaKrause/fann/paircache"
	"github.com/JosuaKrause/fann/tree"
)

// BuildTree constructs a single metric tree over provider's full range. See
// tree.Build.
func BuildTree(provider *embedset.Provider, cache paircache.Cache, sink obs.Sink, opts ...tree.Option) (*tree.Tree, error) {
	return tree.Build(provider, cache, sink, opts...)
}

// SearchTree runs branch-and-bound nearest-neighbor search over t. See
// tree.Search.
func SearchTree(t *tree.Tree, provider *embedset.Provider, query []float64, k int, sink obs.Sink) ([]tree.Result, error) {
	return tree.Search(t, provider, query, k, sink)
}

// BuildForest partitions root into slab trees and builds every one of them.
// See forest.New and (*forest.Forest).BuildAll.
func BuildForest(root *embedset.Provider, minTree, maxTree int, cache paircache.Cache, sink obs.Sink, forestOpts []forest.Option, treeOpts []tree.Option) (*forest.Forest, error) {
	f, err := forest.New(root, minTree, maxTree, forestOpts...)
	if err != nil {
		return nil, err
	}
	if err := f.BuildAll(cache, sink, treeOpts...); err != nil {
		return nil, err
	}
	return f, nil
}

// BuildForestAll builds every slab tree in f that has not yet been built or
// adopted from disk, leaving already-built slabs untouched. Useful after
// LoadForest to fill in slabs the store had no entry for. See
// (*forest.Forest).BuildAll.
func BuildForestAll(f *forest.Forest, cache paircache.Cache, sink obs.Sink, treeOpts ...tree.Option) error {
	return f.BuildAll(cache, sink, treeOpts...)
}

// SearchForest fans a query out to every slab tree in f (and, depending on
// forest.Params, the residual range), merges, and truncates to k. See
// (*forest.Forest).Search.
func SearchForest(f *forest.Forest, query []float64, k int, sink obs.Sink) ([]forest.Result, error) {
	return f.Search(query, k, sink)
}

// SaveForest writes every dirty slab tree in f to w. See (*forest.Forest).Save.
func SaveForest(f *forest.Forest, w io.Writer) error {
	return f.Save(w)
}

// LoadForest adopts matching slab trees from r into f, validating each
// against its provider's fingerprint and distance kernel name, then builds
// every slab the store had no entry for using cache/sink/treeOpts. See
// (*forest.Forest).LoadOrBuild.
func LoadForest(f *forest.Forest, r io.ReaderAt, size int64, force bool, cache paircache.Cache, sink obs.Sink, treeOpts ...tree.Option) error {
	return f.LoadOrBuild(r, size, force, cache, sink, treeOpts...)
}
