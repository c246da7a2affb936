package distkit

import "math"

// L2 is the squared-Euclidean-distance kernel over equal-length []float64
// embeddings. Compare intentionally skips the square root: pruning only needs
// a monotone comparator, and Finalize applies math.Sqrt exactly once, at the
// point a result is reported to a caller. Mirrors the running-sum style used
// by the teacher's DTW local-cost accumulation (|a[i]-b[i]| accumulated term
// by term) rather than a vectorized library call — no vector-math dependency
// (gonum or similar) appears anywhere in the retrieved corpus.
type L2 struct{}

// NewL2 constructs the squared-Euclidean kernel.
func NewL2() L2 {
	return L2{}
}

// Compare returns the squared Euclidean distance between a and b as a Dist.
// Panics if the two vectors have mismatched dimension — a malformed
// embedding set reaching the kernel is a fatal, non-recoverable condition.
func (L2) Compare(a, b []float64) Dist {
	if len(a) != len(b) {
		panic("distkit: mismatched embedding dimension")
	}
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return Of(sum)
}

// Finalize takes the square root of the squared distance accumulated by
// Compare, producing the true Euclidean distance.
func (L2) Finalize(d Dist) float64 {
	return math.Sqrt(d.To())
}

// Name identifies this kernel in a tree's fingerprint.
func (L2) Name() string {
	return "l2"
}
