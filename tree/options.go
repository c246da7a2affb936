package tree

// BuildParams configures tree construction.
type BuildParams struct {
	// MaxNodeSize is the fan-out of a level whose remaining set is smaller
	// than MaxNodeSize^2; a larger set is split into sqrt(len) clusters
	// instead. It defaults to the provider's full size, which puts every
	// point directly under the root. Build rejects a value <= 0 with
	// ErrInvalidParameter.
	MaxNodeSize int
}

// Option configures a BuildParams instance, following the teacher's
// functional-option convention (dijkstra.Option, matrix's Option).
type Option func(*BuildParams)

// WithMaxNodeSize overrides the default max node size (the provider's full
// range length).
func WithMaxNodeSize(n int) Option {
	return func(p *BuildParams) { p.MaxNodeSize = n }
}

func defaultParams(providerLen int) BuildParams {
	return BuildParams{MaxNodeSize: providerLen}
}
