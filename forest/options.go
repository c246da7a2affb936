package forest

// Params configures forest construction and query-time merge behavior.
type Params struct {
	// ResidualMerge, when true, includes the unindexed residual tail range
	// in every search via exhaustive scan (internal/brute), merged into
	// the per-slab tree results before truncation to k. The original
	// engine shipped this disabled (forest.rs::get_closest leaves its
	// residual merge commented out); this port defaults it to true since
	// an approximate index silently dropping part of its corpus from
	// every query is a worse default than the extra scan cost.
	ResidualMerge bool
}

// Option configures a Params instance, following the teacher's
// functional-option convention.
type Option func(*Params)

// WithResidualMerge overrides whether the residual tail range participates
// in search.
func WithResidualMerge(on bool) Option {
	return func(p *Params) { p.ResidualMerge = on }
}

func defaultParams() Params {
	return Params{ResidualMerge: true}
}
