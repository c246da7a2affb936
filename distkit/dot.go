package distkit

import "math"

// Dot is a dot-product-similarity-as-distance kernel, grounded on the
// original engine's DotDistance: it turns a similarity score (higher is
// closer) into a distance (lower is closer) via exp(-dot), so the same
// branch-and-bound machinery built for a true metric can still be pointed at
// a similarity score. Compare and Finalize apply the same transform — there
// is no cheaper monotone proxy for exp(-x) worth deferring — so Finalize is
// the identity map over the Dist's raw value. Dot is not reflexive:
// Compare(a, a) is exp(-dot(a, a)), which is zero only in the limit.
type Dot struct{}

// NewDot constructs the dot-similarity distance kernel.
func NewDot() Dot {
	return Dot{}
}

// Compare returns exp(-dot(a, b)) as a Dist: larger raw dot products map to
// smaller distances.
func (Dot) Compare(a, b []float64) Dist {
	if len(a) != len(b) {
		panic("distkit: mismatched embedding dimension")
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return Of(math.Exp(-dot))
}

// Finalize is the identity map: Compare already produces the reported value.
func (Dot) Finalize(d Dist) float64 {
	return d.To()
}

// Name identifies this kernel in a tree's fingerprint.
func (Dot) Name() string {
	return "dot"
}
