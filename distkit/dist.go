package distkit

import (
	"encoding/json"
	"math"
)

// Dist is a non-negative, finite orderable distance value. It wraps a raw
// float64 with a total order (see Cmp; modelled on the original engine's
// DistanceCmp): two bit-identical values compare equal, and an explicit
// Infinity sentinel exists for "no bound yet". NaN is never a valid Dist;
// constructors saturate negative input to zero rather than propagating a sign,
// since a kernel returning a small negative value is almost always floating
// point noise rather than a real negative distance.
//
// debugAssertNonNegative, if set, makes Of panic instead of clamping — useful
// while developing a new Kernel to catch a buggy Compare implementation early.
// It is off by default so production builds keep the spec's "safer to clamp"
// behavior.
var debugAssertNonNegative = false

// SetDebugAssertNonNegative toggles the debug-only non-negativity assertion
// guarding the original engine's DistanceCmp::of contract. It is a package
// level toggle (not a build tag) so tests can flip it without a separate build.
func SetDebugAssertNonNegative(on bool) {
	debugAssertNonNegative = on
}

// Dist is the orderable, saturating distance scalar used throughout the tree
// and search packages.
type Dist struct {
	v float64
}

// Zero is the additive identity, Dist(0).
func Zero() Dist {
	return Dist{v: 0}
}

// Infinity is a sentinel larger than every finite Dist, used as "no bound".
func Infinity() Dist {
	return Dist{v: math.Inf(1)}
}

// Of constructs a Dist from a raw float64. NaN is a programmer error and
// panics unconditionally — it can never arise from a correct Kernel. A
// negative value is either clamped to zero (default) or panics, depending on
// SetDebugAssertNonNegative.
func Of(v float64) Dist {
	if math.IsNaN(v) {
		panic("distkit: NaN distance")
	}
	if v < 0 {
		if debugAssertNonNegative {
			panic("distkit: negative distance")
		}
		v = 0
	}
	return Dist{v: v}
}

// To returns the raw float64 backing this Dist.
func (d Dist) To() float64 {
	return d.v
}

// Cmp orders d against other by plain float64 comparison. Since a Dist is
// never NaN or negative, this is a total order up to +0 and -0, which
// compare equal; the Infinity sentinel orders after every finite value.
func (d Dist) Cmp(other Dist) int {
	switch {
	case d.v < other.v:
		return -1
	case d.v > other.v:
		return 1
	default:
		return 0
	}
}

// Less reports whether d orders strictly before other.
func (d Dist) Less(other Dist) bool {
	return d.Cmp(other) < 0
}

// LessEq reports whether d orders before or equal to other.
func (d Dist) LessEq(other Dist) bool {
	return d.Cmp(other) <= 0
}

// Add returns d + other.
func (d Dist) Add(other Dist) Dist {
	return Of(d.v + other.v)
}

// SaturatingSub returns max(0, d - other), the clamped subtraction the
// pruning bounds in tree/search.go are built from.
func (d Dist) SaturatingSub(other Dist) Dist {
	diff := d.v - other.v
	if diff < 0 {
		return Zero()
	}
	return Dist{v: diff}
}

// Combine applies a binary float64 function to the two raw values and wraps
// the result back into a Dist, mirroring the original DistanceCmp::combine
// helper used to compose radius/center-distance arithmetic inline.
func (d Dist) Combine(other Dist, fn func(a, b float64) float64) Dist {
	return Of(fn(d.v, other.v))
}

// distWire is Dist's persistence encoding: the raw IEEE-754 bit pattern as a
// hex string. A plain JSON number cannot round-trip the Infinity sentinel
// (encoding/json rejects +Inf), so persistence (forest/persist.go) needs
// this instead of To()/Of() directly, to losslessly preserve the exact bit
// pattern including the sentinel.
type distWire struct {
	Bits string `json:"bits"`
}

// MarshalJSON encodes d as its exact bit pattern.
func (d Dist) MarshalJSON() ([]byte, error) {
	return json.Marshal(distWire{Bits: hexBits(math.Float64bits(d.v))})
}

// UnmarshalJSON decodes a Dist previously written by MarshalJSON.
func (d *Dist) UnmarshalJSON(data []byte) error {
	var w distWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	bits, err := parseHexBits(w.Bits)
	if err != nil {
		return err
	}
	d.v = math.Float64frombits(bits)
	return nil
}

const hexDigits = "0123456789abcdef"

func hexBits(bits uint64) string {
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[bits&0xf]
		bits >>= 4
	}
	return string(buf)
}

func parseHexBits(s string) (uint64, error) {
	var bits uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var v uint64
		switch {
		case c >= '0' && c <= '9':
			v = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			v = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = uint64(c-'A') + 10
		default:
			return 0, &json.UnsupportedValueError{Str: s}
		}
		bits = bits<<4 | v
	}
	return bits, nil
}
