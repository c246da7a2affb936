// Package brute implements an exhaustive linear-scan nearest-neighbor search
// used as a correctness oracle for tree.Search and to serve a forest's
// residual range (the tail too short to form its own tree).
// Internal: this is test/support infrastructure, not a public API surface.
package brute

import (
	"sort"

	"github.com/JosuaKrause/fann/distkit"
	"github.com/JosuaKrause/fann/embedset"
)

// Result is one exhaustive-scan hit: a corpus index and its finalized
// distance from the query.
type Result struct {
	Index int
	Dist  float64
}

// Search scans every index in provider's range, computing its distance to q,
// and returns the k closest sorted ascending by finalized distance.
func Search(provider *embedset.Provider, q []float64, k int) ([]Result, error) {
	start, end := provider.Range()
	type scored struct {
		index int
		d     distkit.Dist
	}
	all := make([]scored, 0, end-start)
	for ix := start; ix < end; ix++ {
		d, err := provider.CompareTo(ix, q)
		if err != nil {
			return nil, err
		}
		all = append(all, scored{index: ix, d: d})
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].d.Less(all[j].d)
	})
	if k < len(all) {
		all = all[:k]
	}
	kernel := provider.Kernel()
	out := make([]Result, len(all))
	for i, s := range all {
		out[i] = Result{Index: s.index, Dist: kernel.Finalize(s.d)}
	}
	return out, nil
}
