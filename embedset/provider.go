package embedset

import "github.com/JosuaKrause/fann/distkit"

// Provider is an indexed, sliceable view onto a corpus of embeddings, bound
// to a distkit.Kernel. A Provider never mutates its backing Dense once
// constructed — it is shared-immutable for the lifetime of any build or
// search that references it.
//
// A sub-range Provider preserves absolute indices: Provider.At(s) on a
// sub-range created over [s, e) returns the same embedding the root Provider
// would return for index s. This is what lets forest.go merge results from
// independent slab trees without any renumbering step.
type Provider struct {
	dense      *Dense
	start, end int
	kernel     distkit.Kernel[[]float64]
}

// New constructs a root Provider spanning the full corpus in dense, bound to
// kernel.
func New(dense *Dense, kernel distkit.Kernel[[]float64]) *Provider {
	return &Provider{dense: dense, start: 0, end: dense.Rows(), kernel: kernel}
}

// Start returns the absolute index of this provider's first embedding.
func (p *Provider) Start() int {
	return p.start
}

// End returns one past the absolute index of this provider's last embedding.
func (p *Provider) End() int {
	return p.end
}

// Len returns the number of embeddings in this provider's range.
func (p *Provider) Len() int {
	return p.end - p.start
}

// Kernel returns the distance kernel bound to this provider.
func (p *Provider) Kernel() distkit.Kernel[[]float64] {
	return p.kernel
}

// At returns the embedding at the given absolute index, borrowed without
// copying.
func (p *Provider) At(index int) ([]float64, error) {
	if index < p.start || index >= p.end {
		return nil, ErrInvalidRange
	}
	return p.dense.At(index)
}

// WithPair borrows both embeddings at once and applies op to them — the
// two-embedding borrow exists so a single comparison never needs to copy
// either vector.
func (p *Provider) WithPair(a, b int, op func(ea, eb []float64) distkit.Dist) (distkit.Dist, error) {
	ea, err := p.At(a)
	if err != nil {
		return distkit.Dist{}, err
	}
	eb, err := p.At(b)
	if err != nil {
		return distkit.Dist{}, err
	}
	return op(ea, eb), nil
}

// Compare computes the kernel distance between the embeddings at a and b.
func (p *Provider) Compare(a, b int) (distkit.Dist, error) {
	return p.WithPair(a, b, func(ea, eb []float64) distkit.Dist {
		return p.kernel.Compare(ea, eb)
	})
}

// CompareTo computes the kernel distance between the embedding at index and
// the query embedding q.
func (p *Provider) CompareTo(index int, q []float64) (distkit.Dist, error) {
	e, err := p.At(index)
	if err != nil {
		return distkit.Dist{}, err
	}
	return p.kernel.Compare(e, q), nil
}

// Range returns the half-open [start, end) absolute index range covered by
// this provider, for iteration.
func (p *Provider) Range() (start, end int) {
	return p.start, p.end
}

// Subrange constructs a new Provider over the absolute range [s, e), which
// must be contained within this provider's own range. The returned Provider
// still reports absolute indices — it never renumbers.
func (p *Provider) Subrange(s, e int) (*Provider, error) {
	if s < p.start || e > p.end || s > e {
		return nil, ErrInvalidRange
	}
	return &Provider{dense: p.dense, start: s, end: e, kernel: p.kernel}, nil
}
